package repository

import (
	"context"
	"database/sql"

	"dayboard/core/database"
	"dayboard/core/entity"
	"dayboard/core/logger"
	"dayboard/core/params"
	noteEntity "dayboard/modules/notes/entity"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Insert(ctx context.Context, note *noteEntity.Note) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*noteEntity.Note, error)
	List(ctx context.Context, userID uuid.UUID, tag string, p params.QueryParams) (*entity.Pagination[noteEntity.Note], error)
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)
	Update(ctx context.Context, note *noteEntity.Note) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	InsertAttachment(ctx context.Context, att *noteEntity.Attachment) error
	ListAttachments(ctx context.Context, noteID uuid.UUID) ([]noteEntity.Attachment, error)
}

type noteRepository struct {
	db database.IDatabase
}

func NewNoteRepository(db database.IDatabase) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Insert(ctx context.Context, note *noteEntity.Note) error {
	query := `
		INSERT INTO notes (user_id, title, content, tags)
		VALUES (:user_id, :title, :content, :tags)
		RETURNING id, created_at, updated_at
	`
	rows, err := r.db.NamedQueryContext(ctx, query, note)
	if err != nil {
		logger.Error("NoteRepository:Insert:Error:", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt); err != nil {
			logger.Error("NoteRepository:Insert:Scan:Error:", err)
			return err
		}
	}
	return rows.Err()
}

// GetByID returns nil, nil when the note is absent or owned by another user.
func (r *noteRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*noteEntity.Note, error) {
	query := `
		SELECT id, user_id, title, content, tags, created_at, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2
	`
	var note noteEntity.Note
	err := r.db.GetContext(ctx, &note, query, id, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("NoteRepository:GetByID:Error:", err)
		return nil, err
	}
	return &note, nil
}

// List returns one page of the user's notes, optionally filtered to a tag.
func (r *noteRepository) List(ctx context.Context, userID uuid.UUID, tag string, p params.QueryParams) (*entity.Pagination[noteEntity.Note], error) {
	where := `WHERE user_id = $1`
	args := []any{userID}
	if tag != "" {
		where += ` AND $2 = ANY(tags)`
		args = append(args, tag)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT count(*) FROM notes `+where, args...); err != nil {
		logger.Error("NoteRepository:List:Count:Error:", err)
		return nil, err
	}

	offset := (p.PageNumber - 1) * p.PageSize
	query := `
		SELECT id, user_id, title, content, tags, created_at, updated_at
		FROM notes ` + where + `
		ORDER BY updated_at DESC
	`
	if tag != "" {
		query += ` LIMIT $3 OFFSET $4`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, p.PageSize, offset)

	var notes []noteEntity.Note
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		logger.Error("NoteRepository:List:Error:", err)
		return nil, err
	}
	if notes == nil {
		notes = []noteEntity.Note{}
	}

	return &entity.Pagination[noteEntity.Note]{
		Items:      notes,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

// ListTags returns the distinct tags used across the user's notes.
func (r *noteRepository) ListTags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT DISTINCT unnest(tags) AS tag
		FROM notes
		WHERE user_id = $1
		ORDER BY tag
	`
	var tags []string
	if err := r.db.SelectContext(ctx, &tags, query, userID); err != nil {
		logger.Error("NoteRepository:ListTags:Error:", err)
		return nil, err
	}
	return tags, nil
}

func (r *noteRepository) Update(ctx context.Context, note *noteEntity.Note) error {
	query := `
		UPDATE notes
		SET title = $1, content = $2, tags = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
	`
	result, err := r.db.SQLx().ExecContext(ctx, query,
		note.Title, note.Content, note.Tags, note.ID, note.UserID,
	)
	if err != nil {
		logger.Error("NoteRepository:Update:Error:", err)
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

func (r *noteRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	result, err := r.db.SQLx().ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Error("NoteRepository:Delete:Error:", err)
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

func (r *noteRepository) InsertAttachment(ctx context.Context, att *noteEntity.Attachment) error {
	query := `
		INSERT INTO note_attachments (note_id, filename, object_key, content_type, size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		att.NoteID, att.Filename, att.ObjectKey, att.ContentType, att.Size,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		logger.Error("NoteRepository:InsertAttachment:Error:", err)
		return err
	}
	return nil
}

func (r *noteRepository) ListAttachments(ctx context.Context, noteID uuid.UUID) ([]noteEntity.Attachment, error) {
	query := `
		SELECT id, note_id, filename, object_key, content_type, size, created_at, updated_at
		FROM note_attachments
		WHERE note_id = $1
		ORDER BY created_at
	`
	var atts []noteEntity.Attachment
	if err := r.db.SelectContext(ctx, &atts, query, noteID); err != nil {
		logger.Error("NoteRepository:ListAttachments:Error:", err)
		return nil, err
	}
	if atts == nil {
		atts = []noteEntity.Attachment{}
	}
	return atts, nil
}
