package repository

import (
	"context"
	"database/sql"
	"time"

	"timegrid/core/database"
	coreentity "timegrid/core/entity"
	"timegrid/core/logger"
	"timegrid/modules/event/entity"
)

// EventRepository handles event database operations.
type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, before time.Time) ([]string, error)
	GetScheduleConfig(ctx context.Context, eventID string) (*coreentity.ScheduleConfig, error)
}

const eventColumns = `id, title, description, slug, date_mode, start_date, end_date,
	selected_days, window_start, window_end, duration_minutes, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (id, title, description, slug, date_mode, start_date, end_date,
		                    selected_days, window_start, window_end, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + eventColumns

	daysValue, err := event.SelectedDays.Value()
	if err != nil {
		logger.Error("EventRepository:Create:SelectedDaysValue", err)
		return nil, err
	}

	var created entity.Event
	err = r.DB.GetContext(ctx, &created, query,
		event.ID, event.Title, event.Description, event.Slug, event.DateMode,
		event.StartDate, event.EndDate, daysValue,
		event.WindowStart, event.WindowEnd, event.DurationMinutes)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventRepository:Delete", err)
		return err
	}
	return nil
}

// DeleteExpired purges explicit-range events whose range ended before
// the cutoff and returns their ids. Recurring events never expire.
func (r *EventRepository) DeleteExpired(ctx context.Context, before time.Time) ([]string, error) {
	query := `
		DELETE FROM events
		WHERE date_mode = $1 AND end_date IS NOT NULL AND end_date < $2
		RETURNING id
	`
	rows, err := r.DB.QueryContext(ctx, query, string(coreentity.DateModeExplicitRange), coreentity.FormatDate(before))
	if err != nil {
		logger.Error("EventRepository:DeleteExpired", err)
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetScheduleConfig implements the availability engine's ScheduleSource.
func (r *EventRepository) GetScheduleConfig(ctx context.Context, eventID string) (*coreentity.ScheduleConfig, error) {
	event, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	cfg := event.ScheduleConfig()
	return &cfg, nil
}
