package service

import (
	"sync"

	"timegrid/modules/availability/entity"
)

type cellKey struct {
	participantID string
	dateKey       string
	slotStart     string
}

// Matrix is the sparse per-participant, per-date, per-slot availability
// store. Absence of a cell means "not set", which aggregation reads as
// not-available — distinct from an explicit false, which Lookup can
// still tell apart.
//
// All mutations funnel through one mutex, so concurrent callers (local
// UI actions and remote feed deliveries) serialize here and readers
// never observe a half-applied patch. The matrix knows nothing about
// any grid; key validation against the generated grid is the session's
// job.
type Matrix struct {
	mu    sync.RWMutex
	cells map[cellKey]bool
}

func NewMatrix() *Matrix {
	return &Matrix{cells: make(map[cellKey]bool)}
}

// Set is an idempotent upsert; any well-formed key succeeds.
func (m *Matrix) Set(participantID, dateKey, slotStart string, value bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[cellKey{participantID, dateKey, slotStart}] = value
}

// Toggle flips a cell, treating a missing cell as false, and returns
// the new value.
func (m *Matrix) Toggle(participantID, dateKey, slotStart string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := cellKey{participantID, dateKey, slotStart}
	next := !m.cells[key]
	m.cells[key] = next
	return next
}

// Get returns the cell value, false when absent.
func (m *Matrix) Get(participantID, dateKey, slotStart string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cells[cellKey{participantID, dateKey, slotStart}]
}

// Lookup returns the cell value and whether it was explicitly set,
// preserving the unknown-vs-declined distinction.
func (m *Matrix) Lookup(participantID, dateKey, slotStart string) (value, known bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, known = m.cells[cellKey{participantID, dateKey, slotStart}]
	return value, known
}

// RemoveParticipant drops every cell for the participant in one
// critical section and returns how many were removed.
func (m *Matrix) RemoveParticipant(participantID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for key := range m.cells {
		if key.participantID == participantID {
			delete(m.cells, key)
			removed++
		}
	}
	return removed
}

// MergePatch applies a batch of cell updates under a single lock hold.
// Updates to distinct cells commute; two patches touching the same cell
// resolve last-applied-wins. The whole matrix is never replaced.
func (m *Matrix) MergePatch(entries []entity.AvailabilityEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.cells[cellKey{e.ParticipantID, e.DateKey, e.SlotStart}] = e.Available
	}
}

// Len reports the number of explicitly set cells.
func (m *Matrix) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}

// snapshot copies the cells under the read lock. Rankers aggregate
// over the copy so one pass sees one consistent state.
func (m *Matrix) snapshot() map[cellKey]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := make(map[cellKey]bool, len(m.cells))
	for k, v := range m.cells {
		snap[k] = v
	}
	return snap
}
