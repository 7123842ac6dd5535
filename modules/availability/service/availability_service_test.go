package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	coreentity "timegrid/core/entity"
	"timegrid/core/errors"
	"timegrid/modules/availability/dto"
	"timegrid/modules/availability/entity"
)

type fakeAvailabilityRepo struct {
	records   []entity.AvailabilityRecord
	upserts   []entity.AvailabilityEntry
	deleted   []string
	upsertErr error
}

func (f *fakeAvailabilityRepo) LoadByEventID(ctx context.Context, eventID string) ([]entity.AvailabilityRecord, error) {
	return f.records, nil
}

func (f *fakeAvailabilityRepo) UpsertCell(ctx context.Context, eventID string, e entity.AvailabilityEntry) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, e)
	return nil
}

func (f *fakeAvailabilityRepo) UpsertCells(ctx context.Context, eventID string, entries []entity.AvailabilityEntry) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, entries...)
	return nil
}

func (f *fakeAvailabilityRepo) DeleteByParticipant(ctx context.Context, eventID, participantID string) error {
	f.deleted = append(f.deleted, participantID)
	return nil
}

type fakeFeed struct {
	mu           sync.Mutex
	published    [][]entity.AvailabilityEntry
	apply        func([]entity.AvailabilityEntry)
	subscribed   int
	unsubscribed int
}

func (f *fakeFeed) Publish(ctx context.Context, eventID, origin string, entries []entity.AvailabilityEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, entries)
	return nil
}

func (f *fakeFeed) Subscribe(eventID, origin string, apply func([]entity.AvailabilityEntry)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apply = apply
	f.subscribed++
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unsubscribed++
	}, nil
}

func (f *fakeFeed) activeSubscriptions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subscribed - f.unsubscribed
}

type fakeSchedules struct {
	configs map[string]*coreentity.ScheduleConfig
}

func (f *fakeSchedules) GetScheduleConfig(ctx context.Context, eventID string) (*coreentity.ScheduleConfig, error) {
	return f.configs[eventID], nil
}

type fakeParticipants struct {
	ids []string
}

func (f *fakeParticipants) ListIDs(ctx context.Context, eventID string) ([]string, error) {
	return f.ids, nil
}

func (f *fakeParticipants) Exists(ctx context.Context, eventID, participantID string) (bool, error) {
	for _, id := range f.ids {
		if id == participantID {
			return true, nil
		}
	}
	return false, nil
}

type serviceFixture struct {
	svc          *AvailabilityService
	repo         *fakeAvailabilityRepo
	feed         *fakeFeed
	participants *fakeParticipants
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	repo := &fakeAvailabilityRepo{}
	feed := &fakeFeed{}
	schedules := &fakeSchedules{configs: map[string]*coreentity.ScheduleConfig{
		"ev1": {
			DateMode:            coreentity.DateModeRecurringWeekdays,
			Weekdays:            []coreentity.Weekday{coreentity.Monday, coreentity.Tuesday},
			WindowStart:         "09:00",
			WindowEnd:           "11:00",
			SlotDurationMinutes: 60,
		},
	}}
	participants := &fakeParticipants{ids: []string{"alice", "bob"}}
	return &serviceFixture{
		svc:          NewAvailabilityService(repo, feed, schedules, participants),
		repo:         repo,
		feed:         feed,
		participants: participants,
	}
}

func TestServiceGetGrid(t *testing.T) {
	f := newServiceFixture(t)

	grid, appErr := f.svc.GetGrid(context.Background(), "ev1")
	if appErr != nil {
		t.Fatalf("GetGrid: %v", appErr)
	}
	if len(grid.Dates) != 2 || grid.Dates[0].Key != "monday" {
		t.Fatalf("dates = %+v, want monday, tuesday", grid.Dates)
	}
	if len(grid.Slots) != 2 || grid.Slots[0].Start != "09:00" || grid.Slots[1].Start != "10:00" {
		t.Fatalf("slots = %+v, want 09:00 and 10:00", grid.Slots)
	}
}

func TestServiceGetGridUnknownEvent(t *testing.T) {
	f := newServiceFixture(t)

	_, appErr := f.svc.GetGrid(context.Background(), "missing")
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("appErr = %v, want not found", appErr)
	}
}

func TestServiceTogglePersistsAndPublishes(t *testing.T) {
	f := newServiceFixture(t)

	resp, appErr := f.svc.Toggle(context.Background(), "ev1", &dto.ToggleRequest{
		ParticipantID: "alice", DateKey: "monday", SlotStart: "09:00",
	})
	if appErr != nil {
		t.Fatalf("Toggle: %v", appErr)
	}
	if !resp.IsAvailable {
		t.Fatal("first toggle should yield true")
	}
	if len(f.repo.upserts) != 1 || !f.repo.upserts[0].Available {
		t.Fatalf("upserts = %+v, want one available entry", f.repo.upserts)
	}
	if len(f.feed.published) != 1 {
		t.Fatalf("published %d patches, want 1", len(f.feed.published))
	}

	resp, appErr = f.svc.Toggle(context.Background(), "ev1", &dto.ToggleRequest{
		ParticipantID: "alice", DateKey: "monday", SlotStart: "09:00",
	})
	if appErr != nil {
		t.Fatalf("Toggle: %v", appErr)
	}
	if resp.IsAvailable {
		t.Fatal("second toggle should yield false")
	}
}

func TestServiceRejectsUnknownParticipant(t *testing.T) {
	f := newServiceFixture(t)

	_, appErr := f.svc.Toggle(context.Background(), "ev1", &dto.ToggleRequest{
		ParticipantID: "mallory", DateKey: "monday", SlotStart: "09:00",
	})
	if appErr == nil || appErr.Code != errors.ErrUnknownParticipant {
		t.Fatalf("appErr = %v, want unknown participant", appErr)
	}
	if len(f.repo.upserts) != 0 {
		t.Fatal("rejected mutation must not reach the store")
	}
}

func TestServiceRejectsKeysOutsideGrid(t *testing.T) {
	f := newServiceFixture(t)

	cases := []dto.ToggleRequest{
		{ParticipantID: "alice", DateKey: "friday", SlotStart: "09:00"},
		{ParticipantID: "alice", DateKey: "monday", SlotStart: "09:30"},
	}
	for _, req := range cases {
		_, appErr := f.svc.Toggle(context.Background(), "ev1", &req)
		if appErr == nil || appErr.Code != errors.ErrInvalidSlotKey {
			t.Fatalf("Toggle(%s, %s): appErr = %v, want invalid slot key", req.DateKey, req.SlotStart, appErr)
		}
	}
}

func TestServiceBatchValidatesBeforeApplying(t *testing.T) {
	f := newServiceFixture(t)

	appErr := f.svc.ApplyBatch(context.Background(), "ev1", &dto.BatchRequest{
		Entries: []dto.CellUpdate{
			{ParticipantID: "alice", DateKey: "monday", SlotStart: "09:00", IsAvailable: true},
			{ParticipantID: "alice", DateKey: "sunday", SlotStart: "09:00", IsAvailable: true},
		},
	})
	if appErr == nil || appErr.Code != errors.ErrInvalidSlotKey {
		t.Fatalf("appErr = %v, want invalid slot key", appErr)
	}
	if len(f.repo.upserts) != 0 {
		t.Fatal("a bad entry must reject the whole batch")
	}

	counts, appErr := f.svc.Counts(context.Background(), "ev1")
	if appErr != nil {
		t.Fatalf("Counts: %v", appErr)
	}
	if len(counts.Counts) != 0 {
		t.Fatalf("counts = %+v, want none after rejected batch", counts.Counts)
	}
}

func TestServiceCountsAndBestTimes(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	appErr := f.svc.ApplyBatch(ctx, "ev1", &dto.BatchRequest{
		Entries: []dto.CellUpdate{
			{ParticipantID: "alice", DateKey: "monday", SlotStart: "09:00", IsAvailable: true},
			{ParticipantID: "bob", DateKey: "monday", SlotStart: "09:00", IsAvailable: true},
			{ParticipantID: "bob", DateKey: "tuesday", SlotStart: "10:00", IsAvailable: true},
		},
	})
	if appErr != nil {
		t.Fatalf("ApplyBatch: %v", appErr)
	}

	best, appErr := f.svc.BestTimes(ctx, "ev1", 1)
	if appErr != nil {
		t.Fatalf("BestTimes: %v", appErr)
	}
	if len(best.BestTimes) != 1 {
		t.Fatalf("got %d best times, want 1", len(best.BestTimes))
	}
	top := best.BestTimes[0]
	if top.DateKey != "monday" || top.SlotStart != "09:00" || top.Count != 2 {
		t.Fatalf("top = %+v, want monday 09:00 with count 2", top)
	}

	counts, appErr := f.svc.Counts(ctx, "ev1")
	if appErr != nil {
		t.Fatalf("Counts: %v", appErr)
	}
	if len(counts.Counts) != 2 {
		t.Fatalf("counts = %+v, want two occupied slots", counts.Counts)
	}
}

func TestServiceRemoveParticipantCascades(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	if _, appErr := f.svc.SetCell(ctx, "ev1", &dto.SetCellRequest{
		ParticipantID: "bob", DateKey: "monday", SlotStart: "09:00", IsAvailable: true,
	}); appErr != nil {
		t.Fatalf("SetCell: %v", appErr)
	}

	if appErr := f.svc.RemoveParticipant(ctx, "ev1", "bob"); appErr != nil {
		t.Fatalf("RemoveParticipant: %v", appErr)
	}
	if len(f.repo.deleted) != 1 || f.repo.deleted[0] != "bob" {
		t.Fatalf("deleted = %v, want [bob]", f.repo.deleted)
	}

	f.participants.ids = []string{"alice"}
	counts, appErr := f.svc.Counts(ctx, "ev1")
	if appErr != nil {
		t.Fatalf("Counts: %v", appErr)
	}
	if len(counts.Counts) != 0 {
		t.Fatalf("counts = %+v, want none after removal", counts.Counts)
	}
}

func TestServiceRemoteFeedPatchMerges(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	// First access builds the session and subscribes.
	if _, appErr := f.svc.GetGrid(ctx, "ev1"); appErr != nil {
		t.Fatalf("GetGrid: %v", appErr)
	}
	if f.feed.apply == nil {
		t.Fatal("session never subscribed to the feed")
	}

	f.feed.apply([]entity.AvailabilityEntry{
		{ParticipantID: "alice", DateKey: "tuesday", SlotStart: "10:00", Available: true},
	})

	counts, appErr := f.svc.Counts(ctx, "ev1")
	if appErr != nil {
		t.Fatalf("Counts: %v", appErr)
	}
	if len(counts.Counts) != 1 || counts.Counts[0].DateKey != "tuesday" || counts.Counts[0].Count != 1 {
		t.Fatalf("counts = %+v, want tuesday 10:00 with count 1", counts.Counts)
	}
	// A remote patch is not re-published.
	if len(f.feed.published) != 0 {
		t.Fatalf("published %d patches, want 0", len(f.feed.published))
	}
}

func TestServiceLoadsPersistedAvailability(t *testing.T) {
	f := newServiceFixture(t)
	pid := uuid.New()
	f.participants.ids = []string{pid.String()}
	f.repo.records = []entity.AvailabilityRecord{
		{ParticipantID: pid, DateKey: "monday", SlotStart: "09:00", IsAvailable: true},
	}

	counts, appErr := f.svc.Counts(context.Background(), "ev1")
	if appErr != nil {
		t.Fatalf("Counts: %v", appErr)
	}
	if len(counts.Counts) != 1 || counts.Counts[0].Count != 1 {
		t.Fatalf("counts = %+v, want persisted cell counted", counts.Counts)
	}
}

func TestServiceFailedUpsertLeavesMatrixUntouched(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.repo.upsertErr = fmt.Errorf("connection reset")

	if _, appErr := f.svc.Toggle(ctx, "ev1", &dto.ToggleRequest{
		ParticipantID: "alice", DateKey: "monday", SlotStart: "09:00",
	}); appErr == nil || appErr.Code != errors.ErrInternalServer {
		t.Fatalf("appErr = %v, want internal error", appErr)
	}
	if appErr := f.svc.ApplyBatch(ctx, "ev1", &dto.BatchRequest{
		Entries: []dto.CellUpdate{
			{ParticipantID: "bob", DateKey: "tuesday", SlotStart: "10:00", IsAvailable: true},
		},
	}); appErr == nil || appErr.Code != errors.ErrInternalServer {
		t.Fatalf("batch appErr = %v, want internal error", appErr)
	}

	// Nothing reached the store, so nothing may linger in memory either.
	counts, appErr := f.svc.Counts(ctx, "ev1")
	if appErr != nil {
		t.Fatalf("Counts: %v", appErr)
	}
	if len(counts.Counts) != 0 {
		t.Fatalf("counts = %+v, want none after failed writes", counts.Counts)
	}
	if len(f.feed.published) != 0 {
		t.Fatalf("published %d patches, want 0", len(f.feed.published))
	}

	// The session survives the failure and works once the store recovers.
	f.repo.upsertErr = nil
	resp, appErr := f.svc.Toggle(ctx, "ev1", &dto.ToggleRequest{
		ParticipantID: "alice", DateKey: "monday", SlotStart: "09:00",
	})
	if appErr != nil {
		t.Fatalf("Toggle after recovery: %v", appErr)
	}
	if !resp.IsAvailable {
		t.Fatal("toggle after a failed attempt must still read from the unchanged cell")
	}
}

func TestServiceConcurrentSessionBuildsConverge(t *testing.T) {
	f := newServiceFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, appErr := f.svc.GetGrid(context.Background(), "ev1"); appErr != nil {
				t.Errorf("GetGrid: %v", appErr)
			}
		}()
	}
	wg.Wait()

	// Racing builds collapse onto one session; losers unsubscribe.
	if got := f.feed.activeSubscriptions(); got != 1 {
		t.Fatalf("active subscriptions = %d, want 1", got)
	}
}
