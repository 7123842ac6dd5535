package entity

import (
	"time"

	coreentity "timegrid/core/entity"

	"github.com/google/uuid"
)

// CandidateDate is one column of the availability grid: a concrete
// calendar date in explicit-range mode, or an abstract weekday in
// recurring mode. Recurring dates are never resolved to a "next
// occurrence" — the weekday identifier itself is the stable key.
type CandidateDate struct {
	Key     string             `json:"key"`
	Weekday coreentity.Weekday `json:"weekday"`
	Date    *time.Time         `json:"date,omitempty"`
}

// TimeSlot is a half-open [Start, End) interval within the daily
// window, in naive "HH:MM" wall-clock form.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityEntry is one cell of the sparse matrix, in the form it
// travels over the change feed and the batch API.
type AvailabilityEntry struct {
	ParticipantID string `json:"participant_id"`
	DateKey       string `json:"date_key"`
	SlotStart     string `json:"slot_start"`
	Available     bool   `json:"available"`
}

// AvailabilityRecord is the persisted form of a cell (availability table).
type AvailabilityRecord struct {
	EventID       string    `db:"event_id"`
	ParticipantID uuid.UUID `db:"participant_id"`
	DateKey       string    `db:"date_key"`
	SlotStart     string    `db:"slot_start"`
	IsAvailable   bool      `db:"is_available"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// BestTime is a transient ranking projection, recomputed on demand and
// never stored.
type BestTime struct {
	DateKey        string   `json:"date_key"`
	SlotStart      string   `json:"slot_start"`
	SlotEnd        string   `json:"slot_end"`
	Count          int      `json:"count"`
	ParticipantIDs []string `json:"participant_ids"`
}
