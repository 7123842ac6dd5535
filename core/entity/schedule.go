package entity

import (
	"fmt"
	"strings"
	"time"
)

// DateMode selects how an event's candidate dates are produced.
type DateMode string

const (
	DateModeExplicitRange     DateMode = "explicit-range"
	DateModeRecurringWeekdays DateMode = "recurring-weekdays"
)

// ParseDateMode normalizes a date mode. The legacy wire values of the
// first web client ("specific", "daysOfWeek", "weekly") are accepted
// and mapped onto the canonical pair.
func ParseDateMode(s string) (DateMode, error) {
	switch strings.TrimSpace(s) {
	case string(DateModeExplicitRange), "specific":
		return DateModeExplicitRange, nil
	case string(DateModeRecurringWeekdays), "daysOfWeek", "weekly":
		return DateModeRecurringWeekdays, nil
	default:
		return "", fmt.Errorf("unknown date mode %q", s)
	}
}

// ScheduleConfig is the organizer's declarative schedule definition.
// It is immutable after event creation: changing it would shift slot
// identities and invalidate collected availability.
type ScheduleConfig struct {
	DateMode            DateMode  `json:"date_mode"`
	StartDate           string    `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate             string    `json:"end_date,omitempty"`   // YYYY-MM-DD
	Weekdays            []Weekday `json:"weekdays,omitempty"`
	WindowStart         string    `json:"window_start"` // HH:MM
	WindowEnd           string    `json:"window_end"`   // HH:MM
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
}

// ConfigError reports a malformed ScheduleConfig, naming the violated
// field. It is never retried: an invalid config cannot become valid.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid schedule config: %s: %s", e.Field, e.Reason)
}

// ParseDate parses a canonical YYYY-MM-DD date key.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders a date as its canonical YYYY-MM-DD key.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Validate checks the config and returns a *ConfigError for the first
// violated field, or nil.
func (c ScheduleConfig) Validate() error {
	switch c.DateMode {
	case DateModeExplicitRange:
		start, err := ParseDate(c.StartDate)
		if err != nil {
			return &ConfigError{Field: "start_date", Reason: fmt.Sprintf("invalid date %q", c.StartDate)}
		}
		end, err := ParseDate(c.EndDate)
		if err != nil {
			return &ConfigError{Field: "end_date", Reason: fmt.Sprintf("invalid date %q", c.EndDate)}
		}
		if end.Before(start) {
			return &ConfigError{Field: "start_date", Reason: "start date is after end date"}
		}
	case DateModeRecurringWeekdays:
		if len(c.Weekdays) == 0 {
			return &ConfigError{Field: "weekdays", Reason: "at least one weekday is required"}
		}
		for _, w := range c.Weekdays {
			if !w.Valid() {
				return &ConfigError{Field: "weekdays", Reason: fmt.Sprintf("unknown weekday %q", w)}
			}
		}
	default:
		return &ConfigError{Field: "date_mode", Reason: fmt.Sprintf("unknown date mode %q", c.DateMode)}
	}

	windowStart, err := ParseClock(c.WindowStart)
	if err != nil {
		return &ConfigError{Field: "window_start", Reason: err.Error()}
	}
	windowEnd, err := ParseClock(c.WindowEnd)
	if err != nil {
		return &ConfigError{Field: "window_end", Reason: err.Error()}
	}
	if windowStart >= windowEnd {
		return &ConfigError{Field: "window_start", Reason: "window start must be before window end"}
	}

	if c.SlotDurationMinutes <= 0 {
		return &ConfigError{Field: "slot_duration_minutes", Reason: "duration must be positive"}
	}

	return nil
}
