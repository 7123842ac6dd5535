package dto

import (
	"encoding/json"
	"fmt"
	"time"

	coreentity "timegrid/core/entity"
	"timegrid/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest mirrors the original client payload. date_mode
// accepts the legacy aliases ("specific", "daysOfWeek", "weekly") and
// selected_days accepts either weekday names or numeric indices
// (0=Monday..6=Sunday) — both are normalized at this boundary, never
// deeper in.
type CreateEventRequest struct {
	Title           string            `json:"title" validate:"required"`
	Description     string            `json:"description"`
	DateMode        string            `json:"date_mode" validate:"required"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	SelectedDays    []json.RawMessage `json:"selected_days"`
	WindowStart     string            `json:"window_start" validate:"required"`
	WindowEnd       string            `json:"window_end" validate:"required"`
	DurationMinutes int               `json:"duration_minutes" validate:"required,min=5,max=480"`
}

// ToScheduleConfig normalizes the request into the engine config.
func (r *CreateEventRequest) ToScheduleConfig() (coreentity.ScheduleConfig, error) {
	mode, err := coreentity.ParseDateMode(r.DateMode)
	if err != nil {
		return coreentity.ScheduleConfig{}, err
	}

	days, err := parseSelectedDays(r.SelectedDays)
	if err != nil {
		return coreentity.ScheduleConfig{}, err
	}

	return coreentity.ScheduleConfig{
		DateMode:            mode,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Weekdays:            days,
		WindowStart:         r.WindowStart,
		WindowEnd:           r.WindowEnd,
		SlotDurationMinutes: r.DurationMinutes,
	}, nil
}

func parseSelectedDays(raw []json.RawMessage) ([]coreentity.Weekday, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	days := make([]coreentity.Weekday, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			day, err := coreentity.ParseWeekday(name)
			if err != nil {
				return nil, err
			}
			days = append(days, day)
			continue
		}
		var index int
		if err := json.Unmarshal(item, &index); err == nil {
			day, err := coreentity.WeekdayFromIndex(index)
			if err != nil {
				return nil, err
			}
			days = append(days, day)
			continue
		}
		return nil, fmt.Errorf("selected_days entry %s is neither a weekday name nor an index", string(item))
	}
	return days, nil
}

// ===================== Response DTOs =====================

// EventResponse for event details.
type EventResponse struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description,omitempty"`
	Slug        string                    `json:"slug"`
	ShareURL    string                    `json:"share_url"`
	Schedule    coreentity.ScheduleConfig `json:"schedule"`
	CreatedAt   time.Time                 `json:"created_at"`
}

func ToEventResponse(e *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		Slug:      e.Slug,
		ShareURL:  fmt.Sprintf("/event/%s", e.ID),
		Schedule:  e.ScheduleConfig(),
		CreatedAt: e.CreatedAt,
	}
	if e.Description != nil {
		resp.Description = *e.Description
	}
	return resp
}
