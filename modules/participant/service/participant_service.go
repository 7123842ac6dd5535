package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	coreentity "timegrid/core/entity"
	"timegrid/core/errors"
	"timegrid/core/logger"
	"timegrid/modules/participant/dto"
	"timegrid/modules/participant/entity"
	"timegrid/modules/participant/repository"
)

// EventSource checks that a participant's event exists. Implemented by
// the event repository; nil config means no such event.
type EventSource interface {
	GetScheduleConfig(ctx context.Context, eventID string) (*coreentity.ScheduleConfig, error)
}

// AvailabilityCascade removes a participant's cells from the live
// matrix and the store. Implemented by the availability service.
type AvailabilityCascade interface {
	RemoveParticipant(ctx context.Context, eventID, participantID string) *errors.AppError
}

// ParticipantService handles participant business logic.
type ParticipantService struct {
	repo         repository.ParticipantRepositoryInterface
	events       EventSource
	availability AvailabilityCascade
}

type ParticipantServiceInterface interface {
	Add(ctx context.Context, eventID string, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	List(ctx context.Context, eventID string) (*dto.ParticipantListResponse, *errors.AppError)
	Remove(ctx context.Context, eventID, participantID string) *errors.AppError
}

func NewParticipantService(
	repo repository.ParticipantRepositoryInterface,
	events EventSource,
	availability AvailabilityCascade,
) ParticipantServiceInterface {
	return &ParticipantService{repo: repo, events: events, availability: availability}
}

func (s *ParticipantService) Add(ctx context.Context, eventID string, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Participant name is required", nil)
	}

	cfg, err := s.events.GetScheduleConfig(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if cfg == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	participant := &entity.Participant{
		ID:      uuid.New(),
		EventID: eventID,
		Name:    name,
	}
	if req.Email != "" {
		email := req.Email
		participant.Email = &email
	}

	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add participant", err)
	}
	return dto.ToParticipantResponse(created), nil
}

func (s *ParticipantService) List(ctx context.Context, eventID string) (*dto.ParticipantListResponse, *errors.AppError) {
	cfg, err := s.events.GetScheduleConfig(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if cfg == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	participants, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list participants", err)
	}
	return dto.ToParticipantListResponse(participants), nil
}

// Remove drops the participant row and cascades their availability out
// of the live matrix, so aggregation never counts a removed member.
func (s *ParticipantService) Remove(ctx context.Context, eventID, participantID string) *errors.AppError {
	id, err := uuid.Parse(participantID)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid participant id", err)
	}

	participant, err := s.repo.GetByID(ctx, eventID, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get participant", err)
	}
	if participant == nil {
		return errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	if appErr := s.availability.RemoveParticipant(ctx, eventID, participantID); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, eventID, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove participant", err)
	}

	logger.Info("ParticipantService:Remove", "event_id", eventID, "participant_id", participantID)
	return nil
}
