package service

import (
	"context"
	"sync"

	coreentity "timegrid/core/entity"
	"timegrid/core/errors"
	"timegrid/core/logger"
	"timegrid/modules/availability/dto"
	"timegrid/modules/availability/entity"
	"timegrid/modules/availability/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ScheduleSource supplies an event's immutable schedule config.
// Implemented by the event repository; nil config means no such event.
type ScheduleSource interface {
	GetScheduleConfig(ctx context.Context, eventID string) (*coreentity.ScheduleConfig, error)
}

// ParticipantSource supplies the current participant set of an event.
type ParticipantSource interface {
	ListIDs(ctx context.Context, eventID string) ([]string, error)
	Exists(ctx context.Context, eventID, participantID string) (bool, error)
}

// AvailabilityService owns one session (grid + matrix + feed
// subscription) per event and exposes the engine's query and mutation
// surface. Sessions build lazily from persistence.
type AvailabilityService struct {
	repo         repository.AvailabilityRepositoryInterface
	feed         repository.AvailabilityFeedInterface
	schedules    ScheduleSource
	participants ParticipantSource

	originID string
	mu       sync.Mutex
	sessions map[string]*Session
}

type AvailabilityServiceInterface interface {
	GetGrid(ctx context.Context, eventID string) (*dto.GridResponse, *errors.AppError)
	Toggle(ctx context.Context, eventID string, req *dto.ToggleRequest) (*dto.CellResponse, *errors.AppError)
	SetCell(ctx context.Context, eventID string, req *dto.SetCellRequest) (*dto.CellResponse, *errors.AppError)
	ApplyBatch(ctx context.Context, eventID string, req *dto.BatchRequest) *errors.AppError
	Counts(ctx context.Context, eventID string) (*dto.CountsResponse, *errors.AppError)
	BestTimes(ctx context.Context, eventID string, topN int) (*dto.BestTimesResponse, *errors.AppError)
	RemoveParticipant(ctx context.Context, eventID, participantID string) *errors.AppError
	CloseSession(eventID string)
	Close()
}

func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	feed repository.AvailabilityFeedInterface,
	schedules ScheduleSource,
	participants ParticipantSource,
) *AvailabilityService {
	origin, _ := gonanoid.New(8)
	return &AvailabilityService{
		repo:         repo,
		feed:         feed,
		schedules:    schedules,
		participants: participants,
		originID:     origin,
		sessions:     make(map[string]*Session),
	}
}

// session returns the event's live session, building it from
// persistence and subscribing to the change feed on first use. The
// build runs outside s.mu so one event's slow first load cannot stall
// requests to other events; a racing build is resolved on insert.
func (s *AvailabilityService) session(ctx context.Context, eventID string) (*Session, *errors.AppError) {
	s.mu.Lock()
	sess, ok := s.sessions[eventID]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	sess, appErr := s.buildSession(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	s.mu.Lock()
	if existing, ok := s.sessions[eventID]; ok {
		s.mu.Unlock()
		sess.close()
		return existing, nil
	}
	s.sessions[eventID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *AvailabilityService) buildSession(ctx context.Context, eventID string) (*Session, *errors.AppError) {
	cfg, err := s.schedules.GetScheduleConfig(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load event schedule", err)
	}
	if cfg == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	dates, slots, err := GenerateGrid(*cfg)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidConfiguration, err.Error(), err)
	}

	sess := newSession(eventID, dates, slots)

	records, err := s.repo.LoadByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load availability", err)
	}
	for _, rec := range records {
		sess.Matrix.Set(rec.ParticipantID.String(), rec.DateKey, rec.SlotStart, rec.IsAvailable)
	}

	unsubscribe, err := s.feed.Subscribe(eventID, s.originID, sess.applyRemote)
	if err != nil {
		logger.Warn("AvailabilityService: feed subscribe failed, running without remote updates",
			"event_id", eventID, "error", err)
	} else {
		sess.unsubscribe = unsubscribe
	}

	return sess, nil
}

func (s *AvailabilityService) GetGrid(ctx context.Context, eventID string) (*dto.GridResponse, *errors.AppError) {
	sess, appErr := s.session(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	return &dto.GridResponse{EventID: eventID, Dates: sess.Dates, Slots: sess.Slots}, nil
}

// checkMutation validates the participant and key of a single-cell
// mutation before it reaches the matrix.
func (s *AvailabilityService) checkMutation(ctx context.Context, sess *Session, eventID, participantID, dateKey, slotStart string) *errors.AppError {
	exists, err := s.participants.Exists(ctx, eventID, participantID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to check participant", err)
	}
	if !exists {
		return errors.NewAppError(errors.ErrUnknownParticipant, ErrUnknownParticipant.Error(), ErrUnknownParticipant)
	}
	if err := sess.checkKey(dateKey, slotStart); err != nil {
		return errors.NewAppError(errors.ErrInvalidSlotKey, err.Error(), err)
	}
	return nil
}

func (s *AvailabilityService) Toggle(ctx context.Context, eventID string, req *dto.ToggleRequest) (*dto.CellResponse, *errors.AppError) {
	sess, appErr := s.session(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.checkMutation(ctx, sess, eventID, req.ParticipantID, req.DateKey, req.SlotStart); appErr != nil {
		return nil, appErr
	}

	// The store is written first so a failed upsert leaves the matrix
	// agreeing with the durable state.
	var value bool
	err := sess.mutate(func() error {
		value = !sess.Matrix.Get(req.ParticipantID, req.DateKey, req.SlotStart)
		entry := entity.AvailabilityEntry{
			ParticipantID: req.ParticipantID,
			DateKey:       req.DateKey,
			SlotStart:     req.SlotStart,
			Available:     value,
		}
		if err := s.repo.UpsertCell(ctx, eventID, entry); err != nil {
			return err
		}
		sess.Matrix.Set(req.ParticipantID, req.DateKey, req.SlotStart, value)
		s.publish(ctx, eventID, []entity.AvailabilityEntry{entry})
		return nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	return &dto.CellResponse{
		ParticipantID: req.ParticipantID,
		DateKey:       req.DateKey,
		SlotStart:     req.SlotStart,
		IsAvailable:   value,
	}, nil
}

func (s *AvailabilityService) SetCell(ctx context.Context, eventID string, req *dto.SetCellRequest) (*dto.CellResponse, *errors.AppError) {
	sess, appErr := s.session(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := s.checkMutation(ctx, sess, eventID, req.ParticipantID, req.DateKey, req.SlotStart); appErr != nil {
		return nil, appErr
	}

	err := sess.mutate(func() error {
		entry := entity.AvailabilityEntry{
			ParticipantID: req.ParticipantID,
			DateKey:       req.DateKey,
			SlotStart:     req.SlotStart,
			Available:     req.IsAvailable,
		}
		if err := s.repo.UpsertCell(ctx, eventID, entry); err != nil {
			return err
		}
		sess.Matrix.Set(req.ParticipantID, req.DateKey, req.SlotStart, req.IsAvailable)
		s.publish(ctx, eventID, []entity.AvailabilityEntry{entry})
		return nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	return &dto.CellResponse{
		ParticipantID: req.ParticipantID,
		DateKey:       req.DateKey,
		SlotStart:     req.SlotStart,
		IsAvailable:   req.IsAvailable,
	}, nil
}

// ApplyBatch merges a patch of cell updates. Every entry is validated
// up front so a bad key rejects the whole patch instead of applying
// half of it.
func (s *AvailabilityService) ApplyBatch(ctx context.Context, eventID string, req *dto.BatchRequest) *errors.AppError {
	sess, appErr := s.session(ctx, eventID)
	if appErr != nil {
		return appErr
	}

	entries := req.ToEntries()
	for _, e := range entries {
		if appErr := s.checkMutation(ctx, sess, eventID, e.ParticipantID, e.DateKey, e.SlotStart); appErr != nil {
			return appErr
		}
	}

	err := sess.mutate(func() error {
		if err := s.repo.UpsertCells(ctx, eventID, entries); err != nil {
			return err
		}
		sess.Matrix.MergePatch(entries)
		s.publish(ctx, eventID, entries)
		return nil
	})
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save availability batch", err)
	}
	return nil
}

// publish fans a patch out to other instances. Best effort: by now the
// matrix and the store agree, and a replica that misses a patch
// reconverges on its next session build.
func (s *AvailabilityService) publish(ctx context.Context, eventID string, entries []entity.AvailabilityEntry) {
	if err := s.feed.Publish(ctx, eventID, s.originID, entries); err != nil {
		logger.Warn("AvailabilityService: feed publish failed", "event_id", eventID, "error", err)
	}
}

func (s *AvailabilityService) Counts(ctx context.Context, eventID string) (*dto.CountsResponse, *errors.AppError) {
	sess, appErr := s.session(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	ids, err := s.participants.ListIDs(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list participants", err)
	}

	best := Rank(sess.Dates, sess.Slots, sess.Matrix, ids, 0)
	counts := make([]dto.SlotCount, 0, len(best))
	for _, b := range best {
		counts = append(counts, dto.SlotCount{
			DateKey:   b.DateKey,
			SlotStart: b.SlotStart,
			SlotEnd:   b.SlotEnd,
			Count:     b.Count,
		})
	}
	return &dto.CountsResponse{EventID: eventID, Counts: counts}, nil
}

func (s *AvailabilityService) BestTimes(ctx context.Context, eventID string, topN int) (*dto.BestTimesResponse, *errors.AppError) {
	sess, appErr := s.session(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	ids, err := s.participants.ListIDs(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list participants", err)
	}

	return &dto.BestTimesResponse{
		EventID:   eventID,
		BestTimes: Rank(sess.Dates, sess.Slots, sess.Matrix, ids, topN),
	}, nil
}

// RemoveParticipant cascades a participant removal into the matrix and
// the store, atomically with respect to concurrent aggregation reads.
func (s *AvailabilityService) RemoveParticipant(ctx context.Context, eventID, participantID string) *errors.AppError {
	sess, appErr := s.session(ctx, eventID)
	if appErr != nil {
		return appErr
	}

	err := sess.mutate(func() error {
		if err := s.repo.DeleteByParticipant(ctx, eventID, participantID); err != nil {
			return err
		}
		removed := sess.Matrix.RemoveParticipant(participantID)
		logger.Info("AvailabilityService:RemoveParticipant",
			"event_id", eventID, "participant_id", participantID, "cells_removed", removed)
		return nil
	})
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove participant availability", err)
	}
	return nil
}

// CloseSession drops an event's session, e.g. after event deletion.
func (s *AvailabilityService) CloseSession(eventID string) {
	s.mu.Lock()
	sess, ok := s.sessions[eventID]
	if ok {
		delete(s.sessions, eventID)
	}
	s.mu.Unlock()
	if ok {
		sess.close()
	}
}

// Close tears down every live session.
func (s *AvailabilityService) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.close()
	}
}
