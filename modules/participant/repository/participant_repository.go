package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"timegrid/core/database"
	"timegrid/core/logger"
	"timegrid/modules/participant/entity"
)

// ParticipantRepository handles participant database operations.
type ParticipantRepository struct {
	DB database.IDatabase
}

func NewParticipantRepository(db database.IDatabase) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

type ParticipantRepositoryInterface interface {
	Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetByID(ctx context.Context, eventID string, id uuid.UUID) (*entity.Participant, error)
	ListByEventID(ctx context.Context, eventID string) ([]entity.Participant, error)
	Delete(ctx context.Context, eventID string, id uuid.UUID) error
	ListIDs(ctx context.Context, eventID string) ([]string, error)
	Exists(ctx context.Context, eventID, participantID string) (bool, error)
}

const participantColumns = `id, event_id, name, email, created_at`

func (r *ParticipantRepository) Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (id, event_id, name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + participantColumns

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, query,
		participant.ID, participant.EventID, participant.Name, participant.Email)
	if err != nil {
		logger.Error("ParticipantRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, eventID string, id uuid.UUID) (*entity.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE event_id = $1 AND id = $2`

	var participant entity.Participant
	err := r.DB.GetContext(ctx, &participant, query, eventID, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("ParticipantRepository:GetByID", err)
		return nil, err
	}
	return &participant, nil
}

// ListByEventID returns the event's participants in join order.
func (r *ParticipantRepository) ListByEventID(ctx context.Context, eventID string) ([]entity.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE event_id = $1 ORDER BY created_at, id`

	participants := []entity.Participant{}
	if err := r.DB.SelectContext(ctx, &participants, query, eventID); err != nil {
		logger.Error("ParticipantRepository:ListByEventID", err)
		return nil, err
	}
	return participants, nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, eventID string, id uuid.UUID) error {
	query := `DELETE FROM participants WHERE event_id = $1 AND id = $2`

	if err := r.DB.ExecContext(ctx, query, eventID, id); err != nil {
		logger.Error("ParticipantRepository:Delete", err)
		return err
	}
	return nil
}

// ListIDs returns the participant ids of an event, in join order.
func (r *ParticipantRepository) ListIDs(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT id FROM participants WHERE event_id = $1 ORDER BY created_at, id`

	ids := []string{}
	if err := r.DB.SelectContext(ctx, &ids, query, eventID); err != nil {
		logger.Error("ParticipantRepository:ListIDs", err)
		return nil, err
	}
	return ids, nil
}

func (r *ParticipantRepository) Exists(ctx context.Context, eventID, participantID string) (bool, error) {
	id, err := uuid.Parse(participantID)
	if err != nil {
		return false, nil
	}

	query := `SELECT EXISTS (SELECT 1 FROM participants WHERE event_id = $1 AND id = $2)`

	var exists bool
	if err := r.DB.GetContext(ctx, &exists, query, eventID, id); err != nil {
		logger.Error("ParticipantRepository:Exists", err)
		return false, err
	}
	return exists, nil
}
