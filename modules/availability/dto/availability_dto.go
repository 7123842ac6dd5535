package dto

import (
	"timegrid/modules/availability/entity"
)

// ===================== Request DTOs =====================

// ToggleRequest flips one cell for a participant.
type ToggleRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	DateKey       string `json:"date_key" validate:"required"`
	SlotStart     string `json:"slot_start" validate:"required"`
}

// SetCellRequest writes one cell explicitly.
type SetCellRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	DateKey       string `json:"date_key" validate:"required"`
	SlotStart     string `json:"slot_start" validate:"required"`
	IsAvailable   bool   `json:"is_available"`
}

// BatchRequest applies a merge patch of individual cells.
type BatchRequest struct {
	Entries []CellUpdate `json:"entries" validate:"required,min=1,dive"`
}

type CellUpdate struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	DateKey       string `json:"date_key" validate:"required"`
	SlotStart     string `json:"slot_start" validate:"required"`
	IsAvailable   bool   `json:"is_available"`
}

// ===================== Response DTOs =====================

// GridResponse is the generated grid shown to participants.
type GridResponse struct {
	EventID string                 `json:"event_id"`
	Dates   []entity.CandidateDate `json:"dates"`
	Slots   []entity.TimeSlot      `json:"slots"`
}

// CellResponse echoes the state of one cell after a mutation.
type CellResponse struct {
	ParticipantID string `json:"participant_id"`
	DateKey       string `json:"date_key"`
	SlotStart     string `json:"slot_start"`
	IsAvailable   bool   `json:"is_available"`
}

// SlotCount is the aggregated count for one grid cell.
type SlotCount struct {
	DateKey   string `json:"date_key"`
	SlotStart string `json:"slot_start"`
	SlotEnd   string `json:"slot_end"`
	Count     int    `json:"count"`
}

// CountsResponse carries counts for every cell with at least one vote.
type CountsResponse struct {
	EventID string      `json:"event_id"`
	Counts  []SlotCount `json:"counts"`
}

// BestTimesResponse is the ranked best-times projection.
type BestTimesResponse struct {
	EventID   string            `json:"event_id"`
	BestTimes []entity.BestTime `json:"best_times"`
}

// ToEntries converts a batch request to engine entries.
func (r BatchRequest) ToEntries() []entity.AvailabilityEntry {
	entries := make([]entity.AvailabilityEntry, 0, len(r.Entries))
	for _, u := range r.Entries {
		entries = append(entries, entity.AvailabilityEntry{
			ParticipantID: u.ParticipantID,
			DateKey:       u.DateKey,
			SlotStart:     u.SlotStart,
			Available:     u.IsAvailable,
		})
	}
	return entries
}
