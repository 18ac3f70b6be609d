package repository

import (
	"context"
	"database/sql"

	"dayboard/core/database"
	"dayboard/core/logger"
	"dayboard/modules/calendar/entity"

	"github.com/google/uuid"
)

// EventRepository is the Event Store. No unique constraint backs the
// dedup key; callers (the reconciler) are the sole enforcers.
type EventRepository interface {
	FindByUserAndKey(ctx context.Context, userID uuid.UUID, title, start, end string) (*entity.CalendarEvent, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CalendarEvent, error)
	ListByUserAndFolder(ctx context.Context, userID uuid.UUID, carpeta string) ([]entity.CalendarEvent, error)
	ListFolders(ctx context.Context, userID uuid.UUID) ([]string, error)
	Insert(ctx context.Context, event *entity.CalendarEvent) (uuid.UUID, error)
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type eventRepository struct {
	db database.IDatabase
}

func NewEventRepository(db database.IDatabase) EventRepository {
	return &eventRepository{db: db}
}

// FindByUserAndKey returns nil, nil when no row matches the dedup key.
func (r *eventRepository) FindByUserAndKey(ctx context.Context, userID uuid.UUID, title, start, end string) (*entity.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, "start", "end", color, source, carpeta, created_at, updated_at
		FROM calendar_events
		WHERE user_id = $1 AND title = $2 AND "start" = $3 AND "end" = $4
		LIMIT 1
	`
	var event entity.CalendarEvent
	err := r.db.GetContext(ctx, &event, query, userID, title, start, end)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("EventRepository:FindByUserAndKey:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, "start", "end", color, source, carpeta, created_at, updated_at
		FROM calendar_events
		WHERE user_id = $1
	`
	var events []entity.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, userID); err != nil {
		logger.Error("EventRepository:ListByUser:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListByUserAndFolder(ctx context.Context, userID uuid.UUID, carpeta string) ([]entity.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, "start", "end", color, source, carpeta, created_at, updated_at
		FROM calendar_events
		WHERE user_id = $1 AND carpeta = $2
	`
	var events []entity.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, userID, carpeta); err != nil {
		logger.Error("EventRepository:ListByUserAndFolder:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListFolders(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT DISTINCT carpeta
		FROM calendar_events
		WHERE user_id = $1 AND carpeta <> ''
		ORDER BY carpeta
	`
	var folders []string
	if err := r.db.SelectContext(ctx, &folders, query, userID); err != nil {
		logger.Error("EventRepository:ListFolders:Error:", err)
		return nil, err
	}
	return folders, nil
}

func (r *eventRepository) Insert(ctx context.Context, event *entity.CalendarEvent) (uuid.UUID, error) {
	query := `
		INSERT INTO calendar_events (user_id, title, "start", "end", color, source, carpeta)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		event.UserID, event.Title, event.Start, event.End, event.Color, event.Source, event.Carpeta,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		logger.Error("EventRepository:Insert:Error:", err)
		return uuid.Nil, err
	}
	return event.ID, nil
}

// Update modifies a manual event. Returns sql.ErrNoRows when the row is
// absent or owned by another user.
func (r *eventRepository) Update(ctx context.Context, event *entity.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $1, "start" = $2, "end" = $3, color = $4, carpeta = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7
	`
	result, err := r.db.SQLx().ExecContext(ctx, query,
		event.Title, event.Start, event.End, event.Color, event.Carpeta, event.ID, event.UserID,
	)
	if err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:Update:RowsAffected:Error:", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM calendar_events WHERE id = $1 AND user_id = $2`
	result, err := r.db.SQLx().ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
