package service

import (
	"errors"
	"fmt"
	"sync"

	"timegrid/modules/availability/entity"
)

var ErrUnknownParticipant = errors.New("participant is not part of this event")

// KeyError reports a (dateKey, slotStart) pair that does not belong to
// the event's generated grid. Arbitrary keys are a caller contract
// violation and are surfaced, never silently stored.
type KeyError struct {
	DateKey   string
	SlotStart string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key (%s, %s) is not in the event grid", e.DateKey, e.SlotStart)
}

// Session is the single in-memory owner of one event's grid and
// matrix. Mutations serialize on mu; the matrix's own lock additionally
// keeps aggregation reads consistent with in-flight patches.
type Session struct {
	EventID string
	Dates   []entity.CandidateDate
	Slots   []entity.TimeSlot
	Matrix  *Matrix

	mu          sync.Mutex
	dateKeys    map[string]bool
	slotStarts  map[string]bool
	unsubscribe func()
}

func newSession(eventID string, dates []entity.CandidateDate, slots []entity.TimeSlot) *Session {
	s := &Session{
		EventID:    eventID,
		Dates:      dates,
		Slots:      slots,
		Matrix:     NewMatrix(),
		dateKeys:   make(map[string]bool, len(dates)),
		slotStarts: make(map[string]bool, len(slots)),
	}
	for _, d := range dates {
		s.dateKeys[d.Key] = true
	}
	for _, sl := range slots {
		s.slotStarts[sl.Start] = true
	}
	return s
}

// checkKey validates a cell key against the grid.
func (s *Session) checkKey(dateKey, slotStart string) error {
	if !s.dateKeys[dateKey] || !s.slotStarts[slotStart] {
		return &KeyError{DateKey: dateKey, SlotStart: slotStart}
	}
	return nil
}

// mutate runs fn inside the session's mutation region, so a local
// toggle, its persistence write and its feed publish cannot interleave
// with another writer on the same event.
func (s *Session) mutate(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// applyRemote merges a change-feed patch into the matrix. Remote
// patches go through the same serialization point as local mutations;
// entries for participants removed in the meantime may re-enter the
// matrix but can never resurface in counts, because ranking iterates
// the current participant set.
func (s *Session) applyRemote(entries []entity.AvailabilityEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Matrix.MergePatch(entries)
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
