package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	coreentity "timegrid/core/entity"
)

// SelectedDays is the recurring weekday set, stored as JSONB.
type SelectedDays []coreentity.Weekday

func (d SelectedDays) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *SelectedDays) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, d)
}

// Event is a group availability poll. The schedule columns are the
// organizer's ScheduleConfig, frozen at creation: changing them would
// shift slot identities under collected availability, so there is no
// update path for them.
type Event struct {
	ID              string       `db:"id" json:"id"`
	Title           string       `db:"title" json:"title"`
	Description     *string      `db:"description" json:"description,omitempty"`
	Slug            string       `db:"slug" json:"slug"`
	DateMode        string       `db:"date_mode" json:"date_mode"`
	StartDate       *string      `db:"start_date" json:"start_date,omitempty"`
	EndDate         *string      `db:"end_date" json:"end_date,omitempty"`
	SelectedDays    SelectedDays `db:"selected_days" json:"selected_days,omitempty"`
	WindowStart     string       `db:"window_start" json:"window_start"`
	WindowEnd       string       `db:"window_end" json:"window_end"`
	DurationMinutes int          `db:"duration_minutes" json:"duration_minutes"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
}

// ScheduleConfig lifts the schedule columns into the engine's config type.
func (e *Event) ScheduleConfig() coreentity.ScheduleConfig {
	cfg := coreentity.ScheduleConfig{
		DateMode:            coreentity.DateMode(e.DateMode),
		Weekdays:            []coreentity.Weekday(e.SelectedDays),
		WindowStart:         e.WindowStart,
		WindowEnd:           e.WindowEnd,
		SlotDurationMinutes: e.DurationMinutes,
	}
	if e.StartDate != nil {
		cfg.StartDate = *e.StartDate
	}
	if e.EndDate != nil {
		cfg.EndDate = *e.EndDate
	}
	return cfg
}
