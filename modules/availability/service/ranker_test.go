package service

import (
	"reflect"
	"testing"

	coreentity "timegrid/core/entity"
	"timegrid/modules/availability/entity"
)

func weekGrid() ([]entity.CandidateDate, []entity.TimeSlot) {
	dates := []entity.CandidateDate{
		{Key: "monday", Weekday: coreentity.Monday},
		{Key: "tuesday", Weekday: coreentity.Tuesday},
		{Key: "wednesday", Weekday: coreentity.Wednesday},
	}
	slots := []entity.TimeSlot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
	}
	return dates, slots
}

func TestCountAt(t *testing.T) {
	dates, slots := weekGrid()
	m := NewMatrix()
	m.Set("alice", "monday", "09:00", true)
	m.Set("bob", "monday", "09:00", true)
	m.Set("carol", "monday", "09:00", false)

	participants := []string{"alice", "bob", "carol"}
	if got := CountAt(dates[0], slots[0], m, participants); got != 2 {
		t.Fatalf("CountAt = %d, want 2", got)
	}
	// Participants outside the list never count.
	if got := CountAt(dates[0], slots[0], m, []string{"alice"}); got != 1 {
		t.Fatalf("CountAt with subset = %d, want 1", got)
	}
	if got := CountAt(dates[1], slots[0], m, participants); got != 0 {
		t.Fatalf("CountAt on empty cell = %d, want 0", got)
	}
}

func TestRankOrdersByCountThenGridPosition(t *testing.T) {
	dates, slots := weekGrid()
	m := NewMatrix()
	// Two can do Tuesday 10:00, one each can do Monday 09:00 and
	// Wednesday 11:00.
	m.Set("alice", "tuesday", "10:00", true)
	m.Set("bob", "tuesday", "10:00", true)
	m.Set("bob", "monday", "09:00", true)
	m.Set("alice", "wednesday", "11:00", true)

	got := Rank(dates, slots, m, []string{"alice", "bob"}, 0)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].DateKey != "tuesday" || got[0].SlotStart != "10:00" || got[0].Count != 2 {
		t.Fatalf("top = %+v, want tuesday 10:00 with count 2", got[0])
	}
	if want := []string{"alice", "bob"}; !reflect.DeepEqual(got[0].ParticipantIDs, want) {
		t.Fatalf("top participants = %v, want %v", got[0].ParticipantIDs, want)
	}
	// The count-1 tie resolves by grid position: Monday before Wednesday.
	if got[1].DateKey != "monday" || got[2].DateKey != "wednesday" {
		t.Fatalf("tie order = %q, %q, want monday then wednesday", got[1].DateKey, got[2].DateKey)
	}
}

func TestRankTieBreaksWithinOneDateBySlotOrder(t *testing.T) {
	dates, slots := weekGrid()
	m := NewMatrix()
	m.Set("alice", "monday", "11:00", true)
	m.Set("alice", "monday", "09:00", true)

	got := Rank(dates, slots, m, []string{"alice"}, 0)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].SlotStart != "09:00" || got[1].SlotStart != "11:00" {
		t.Fatalf("slot tie order = %q, %q, want 09:00 then 11:00", got[0].SlotStart, got[1].SlotStart)
	}
}

func TestRankExcludesZeroCountSlots(t *testing.T) {
	dates, slots := weekGrid()
	m := NewMatrix()
	m.Set("alice", "monday", "09:00", false)

	got := Rank(dates, slots, m, []string{"alice"}, 0)
	if len(got) != 0 {
		t.Fatalf("got %d entries, want none: explicit false is not availability", len(got))
	}
}

func TestRankTopNTruncatesWithoutPadding(t *testing.T) {
	dates, slots := weekGrid()
	m := NewMatrix()
	m.Set("alice", "monday", "09:00", true)
	m.Set("alice", "monday", "10:00", true)

	// Fewer qualifying slots than topN: return what exists.
	if got := Rank(dates, slots, m, []string{"alice"}, 5); len(got) != 2 {
		t.Fatalf("got %d entries, want 2 without zero-count padding", len(got))
	}
	// More than topN: truncate.
	if got := Rank(dates, slots, m, []string{"alice"}, 1); len(got) != 1 || got[0].SlotStart != "09:00" {
		t.Fatalf("topN=1 = %+v, want just monday 09:00", got)
	}
}

func TestRankIgnoresRemovedParticipants(t *testing.T) {
	dates, slots := weekGrid()
	m := NewMatrix()
	m.Set("alice", "monday", "09:00", true)
	m.Set("bob", "monday", "09:00", true)

	got := Rank(dates, slots, m, []string{"alice", "bob"}, 0)
	if got[0].Count != 2 {
		t.Fatalf("count = %d, want 2", got[0].Count)
	}

	m.RemoveParticipant("bob")
	got = Rank(dates, slots, m, []string{"alice"}, 0)
	if got[0].Count != 1 || !reflect.DeepEqual(got[0].ParticipantIDs, []string{"alice"}) {
		t.Fatalf("after removal = %+v, want count 1 with just alice", got[0])
	}

	// Even a stale matrix cell cannot resurface a removed participant
	// while they are absent from the roster.
	m.Set("bob", "monday", "09:00", true)
	got = Rank(dates, slots, m, []string{"alice"}, 0)
	if got[0].Count != 1 {
		t.Fatalf("roster must bound the count, got %d", got[0].Count)
	}
}

func TestRankSlotsOutsideGridNeverAppear(t *testing.T) {
	dates, slots := weekGrid()
	m := NewMatrix()
	m.Set("alice", "friday", "09:00", true)
	m.Set("alice", "monday", "23:00", true)

	if got := Rank(dates, slots, m, []string{"alice"}, 0); len(got) != 0 {
		t.Fatalf("cells off the grid ranked: %+v", got)
	}
}
