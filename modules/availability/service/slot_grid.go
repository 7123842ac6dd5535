package service

import (
	coreentity "timegrid/core/entity"
	"timegrid/modules/availability/entity"
)

// GenerateGrid turns a schedule config into the ordered grid of
// candidate dates and time slots. Pure and deterministic: the same
// config always yields the same sequences, with no dependency on the
// current time. An invalid config fails with a *ConfigError naming the
// violated field; the generator never substitutes an empty grid for an
// error.
func GenerateGrid(cfg coreentity.ScheduleConfig) ([]entity.CandidateDate, []entity.TimeSlot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return generateDates(cfg), generateSlots(cfg), nil
}

func generateDates(cfg coreentity.ScheduleConfig) []entity.CandidateDate {
	dates := []entity.CandidateDate{}

	switch cfg.DateMode {
	case coreentity.DateModeExplicitRange:
		// Validate guarantees both parse and start <= end.
		start, _ := coreentity.ParseDate(cfg.StartDate)
		end, _ := coreentity.ParseDate(cfg.EndDate)
		for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
			date := cur
			dates = append(dates, entity.CandidateDate{
				Key:     coreentity.FormatDate(date),
				Weekday: coreentity.WeekdayOf(date),
				Date:    &date,
			})
		}
	case coreentity.DateModeRecurringWeekdays:
		selected := make(map[coreentity.Weekday]bool, len(cfg.Weekdays))
		for _, w := range cfg.Weekdays {
			selected[w] = true
		}
		// Canonical Monday..Sunday order, independent of input order;
		// duplicates collapse via the set.
		for _, w := range coreentity.AllWeekdays() {
			if selected[w] {
				dates = append(dates, entity.CandidateDate{
					Key:     string(w),
					Weekday: w,
				})
			}
		}
	}

	return dates
}

func generateSlots(cfg coreentity.ScheduleConfig) []entity.TimeSlot {
	windowStart, _ := coreentity.ParseClock(cfg.WindowStart)
	windowEnd, _ := coreentity.ParseClock(cfg.WindowEnd)
	duration := cfg.SlotDurationMinutes

	// A trailing partial slot is dropped, never truncated. Zero slots
	// is a valid result when the window is shorter than one duration.
	slots := []entity.TimeSlot{}
	for cur := windowStart; cur+duration <= windowEnd; cur += duration {
		slots = append(slots, entity.TimeSlot{
			Start: coreentity.FormatClock(cur),
			End:   coreentity.FormatClock(cur + duration),
		})
	}
	return slots
}
