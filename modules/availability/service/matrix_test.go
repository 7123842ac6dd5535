package service

import (
	"sync"
	"testing"

	"timegrid/modules/availability/entity"
)

func TestMatrixToggleIsSelfInverse(t *testing.T) {
	m := NewMatrix()

	// An unset cell toggles to true.
	if got := m.Toggle("alice", "2026-03-02", "09:00"); !got {
		t.Fatal("first toggle should yield true")
	}
	if got := m.Toggle("alice", "2026-03-02", "09:00"); got {
		t.Fatal("second toggle should yield false")
	}

	// An explicit false behaves like the implicit one.
	m.Set("bob", "2026-03-02", "09:00", false)
	if got := m.Toggle("bob", "2026-03-02", "09:00"); !got {
		t.Fatal("toggle of explicit false should yield true")
	}
}

func TestMatrixLookupDistinguishesUnsetFromFalse(t *testing.T) {
	m := NewMatrix()

	if _, known := m.Lookup("alice", "monday", "10:00"); known {
		t.Fatal("unset cell must not be known")
	}
	m.Set("alice", "monday", "10:00", false)
	value, known := m.Lookup("alice", "monday", "10:00")
	if !known {
		t.Fatal("explicitly set cell must be known")
	}
	if value {
		t.Fatal("explicit false must stay false")
	}
	// Get flattens both onto false.
	if m.Get("alice", "monday", "10:00") || m.Get("alice", "monday", "11:00") {
		t.Fatal("Get should read false for both unset and explicit false")
	}
}

func TestMatrixSetIsIdempotent(t *testing.T) {
	m := NewMatrix()
	m.Set("alice", "monday", "10:00", true)
	m.Set("alice", "monday", "10:00", true)
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	if !m.Get("alice", "monday", "10:00") {
		t.Fatal("cell lost after repeated set")
	}
}

func TestMatrixRemoveParticipant(t *testing.T) {
	m := NewMatrix()
	m.Set("alice", "monday", "10:00", true)
	m.Set("alice", "monday", "11:00", false)
	m.Set("bob", "monday", "10:00", true)

	if removed := m.RemoveParticipant("alice"); removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if _, known := m.Lookup("alice", "monday", "10:00"); known {
		t.Fatal("removed participant's cells must be gone")
	}
	if !m.Get("bob", "monday", "10:00") {
		t.Fatal("other participants' cells must survive")
	}
	if removed := m.RemoveParticipant("alice"); removed != 0 {
		t.Fatalf("second removal removed %d cells, want 0", removed)
	}
}

func TestMatrixMergePatchDisjointCellsCommute(t *testing.T) {
	patchA := []entity.AvailabilityEntry{
		{ParticipantID: "alice", DateKey: "monday", SlotStart: "10:00", Available: true},
	}
	patchB := []entity.AvailabilityEntry{
		{ParticipantID: "bob", DateKey: "tuesday", SlotStart: "11:00", Available: true},
	}

	ab := NewMatrix()
	ab.MergePatch(patchA)
	ab.MergePatch(patchB)

	ba := NewMatrix()
	ba.MergePatch(patchB)
	ba.MergePatch(patchA)

	for _, m := range []*Matrix{ab, ba} {
		if !m.Get("alice", "monday", "10:00") || !m.Get("bob", "tuesday", "11:00") {
			t.Fatal("disjoint patches must merge identically in either order")
		}
		if m.Len() != 2 {
			t.Fatalf("Len = %d, want 2", m.Len())
		}
	}
}

func TestMatrixMergePatchSameCellLastWins(t *testing.T) {
	m := NewMatrix()
	m.MergePatch([]entity.AvailabilityEntry{
		{ParticipantID: "alice", DateKey: "monday", SlotStart: "10:00", Available: true},
	})
	m.MergePatch([]entity.AvailabilityEntry{
		{ParticipantID: "alice", DateKey: "monday", SlotStart: "10:00", Available: false},
	})

	value, known := m.Lookup("alice", "monday", "10:00")
	if !known || value {
		t.Fatalf("cell = (%v, %v), want explicit false after second patch", value, known)
	}
}

func TestMatrixConcurrentMutation(t *testing.T) {
	m := NewMatrix()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Toggle("alice", "monday", "10:00")
				m.Set("bob", "monday", "10:00", true)
				m.Get("alice", "monday", "10:00")
			}
		}()
	}
	wg.Wait()

	// 800 toggles in total, so alice ends where she started.
	if m.Get("alice", "monday", "10:00") {
		t.Fatal("even toggle count should land on false")
	}
	if !m.Get("bob", "monday", "10:00") {
		t.Fatal("bob's cell lost under concurrency")
	}
}
