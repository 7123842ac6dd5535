package repository

import (
	"context"

	"timegrid/core/database"
	"timegrid/core/logger"
	"timegrid/modules/availability/entity"

	"github.com/google/uuid"
)

// AvailabilityRepository persists matrix cells, one row per explicitly
// set cell. Writes are always cell-level upserts — the whole matrix is
// never replaced in one statement, so two participants editing
// concurrently cannot clobber each other's rows.
type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

type AvailabilityRepositoryInterface interface {
	LoadByEventID(ctx context.Context, eventID string) ([]entity.AvailabilityRecord, error)
	UpsertCell(ctx context.Context, eventID string, e entity.AvailabilityEntry) error
	UpsertCells(ctx context.Context, eventID string, entries []entity.AvailabilityEntry) error
	DeleteByParticipant(ctx context.Context, eventID, participantID string) error
}

func (r *AvailabilityRepository) LoadByEventID(ctx context.Context, eventID string) ([]entity.AvailabilityRecord, error) {
	query := `
		SELECT event_id, participant_id, date_key, slot_start, is_available, updated_at
		FROM availability
		WHERE event_id = $1
	`
	var records []entity.AvailabilityRecord
	err := r.DB.SelectContext(ctx, &records, query, eventID)
	if err != nil {
		logger.Error("AvailabilityRepository:LoadByEventID", err)
		return nil, err
	}
	return records, nil
}

func (r *AvailabilityRepository) UpsertCell(ctx context.Context, eventID string, e entity.AvailabilityEntry) error {
	pid, err := uuid.Parse(e.ParticipantID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO availability (event_id, participant_id, date_key, slot_start, is_available, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (event_id, participant_id, date_key, slot_start)
		DO UPDATE SET is_available = EXCLUDED.is_available, updated_at = NOW()
	`
	if err := r.DB.ExecContext(ctx, query, eventID, pid, e.DateKey, e.SlotStart, e.Available); err != nil {
		logger.Error("AvailabilityRepository:UpsertCell", err)
		return err
	}
	return nil
}

func (r *AvailabilityRepository) UpsertCells(ctx context.Context, eventID string, entries []entity.AvailabilityEntry) error {
	for _, e := range entries {
		if err := r.UpsertCell(ctx, eventID, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *AvailabilityRepository) DeleteByParticipant(ctx context.Context, eventID, participantID string) error {
	pid, err := uuid.Parse(participantID)
	if err != nil {
		return err
	}

	query := `DELETE FROM availability WHERE event_id = $1 AND participant_id = $2`
	if err := r.DB.ExecContext(ctx, query, eventID, pid); err != nil {
		logger.Error("AvailabilityRepository:DeleteByParticipant", err)
		return err
	}
	return nil
}
