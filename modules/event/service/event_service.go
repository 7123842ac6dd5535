package service

import (
	"context"
	"encoding/json"
	"time"

	"timegrid/core/cache"
	"timegrid/core/constants"
	coreentity "timegrid/core/entity"
	"timegrid/core/errors"
	"timegrid/core/logger"
	"timegrid/core/utils"
	"timegrid/modules/event/dto"
	"timegrid/modules/event/entity"
	"timegrid/modules/event/repository"
)

// SessionCloser lets the event module drop the availability session of
// a deleted event. Implemented by the availability service.
type SessionCloser interface {
	CloseSession(eventID string)
}

// EventService handles event business logic.
type EventService struct {
	repo     repository.EventRepositoryInterface
	cache    *cache.Cache
	sessions SessionCloser
}

type EventServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError)
	Delete(ctx context.Context, id string) *errors.AppError
	CleanupExpired(ctx context.Context, retentionDays int) (int, error)
}

func NewEventService(repo repository.EventRepositoryInterface, c *cache.Cache, sessions SessionCloser) EventServiceInterface {
	return &EventService{repo: repo, cache: c, sessions: sessions}
}

// Create validates the schedule config and generates the event's share
// id and slug. A config that cannot produce a grid is rejected here —
// the config is immutable afterwards.
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	cfg, err := req.ToScheduleConfig()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidConfiguration, err.Error(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidConfiguration, err.Error(), err)
	}

	event := &entity.Event{
		ID:              utils.GenerateEventID(),
		Title:           req.Title,
		Slug:            utils.GenerateSlug(req.Title),
		DateMode:        string(cfg.DateMode),
		SelectedDays:    entity.SelectedDays(cfg.Weekdays),
		WindowStart:     cfg.WindowStart,
		WindowEnd:       cfg.WindowEnd,
		DurationMinutes: cfg.SlotDurationMinutes,
	}
	if req.Description != "" {
		event.Description = &req.Description
	}
	if cfg.DateMode == coreentity.DateModeExplicitRange {
		event.StartDate = &cfg.StartDate
		event.EndDate = &cfg.EndDate
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return dto.ToEventResponse(created), nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError) {
	cacheKey := constants.RedisKeyEventCache + id
	if cached, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
		var resp dto.EventResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	resp := dto.ToEventResponse(event)
	if payload, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(payload), constants.EventCacheTTL); err != nil {
			logger.Warn("EventService:GetByID: cache set failed", "error", err)
		}
	}
	return resp, nil
}

func (s *EventService) Delete(ctx context.Context, id string) *errors.AppError {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	s.sessions.CloseSession(id)
	if err := s.cache.Del(ctx, constants.RedisKeyEventCache+id); err != nil {
		logger.Warn("EventService:Delete: cache del failed", "error", err)
	}
	return nil
}

// CleanupExpired is the daily maintenance task: drop explicit-range
// events whose range ended more than retentionDays ago. Participant
// and availability rows go with them via FK cascade.
func (s *EventService) CleanupExpired(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	ids, err := s.repo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.sessions.CloseSession(id)
		if err := s.cache.Del(ctx, constants.RedisKeyEventCache+id); err != nil {
			logger.Warn("EventService:CleanupExpired: cache del failed", "error", err)
		}
	}
	logger.Info("EventService:CleanupExpired", "removed", len(ids), "cutoff", coreentity.FormatDate(cutoff))
	return len(ids), nil
}
