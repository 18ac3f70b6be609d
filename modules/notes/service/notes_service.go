package service

import (
	"context"
	"database/sql"
	"io"

	"dayboard/core/entity"
	"dayboard/core/errors"
	"dayboard/core/logger"
	"dayboard/core/params"
	"dayboard/core/storage"
	"dayboard/modules/notes/dto"
	noteEntity "dayboard/modules/notes/entity"
	"dayboard/modules/notes/repository"

	"github.com/google/uuid"
)

type NotesService interface {
	Get(ctx context.Context, userID, noteID uuid.UUID) (*noteEntity.Note, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID, tag string, p params.QueryParams) (*entity.Pagination[noteEntity.Note], *errors.AppError)
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, *errors.AppError)
	Create(ctx context.Context, userID uuid.UUID, req *dto.SaveNoteRequest) (uuid.UUID, *errors.AppError)
	Update(ctx context.Context, userID uuid.UUID, req *dto.SaveNoteRequest) *errors.AppError
	Delete(ctx context.Context, userID, noteID uuid.UUID) *errors.AppError
	UploadAttachment(ctx context.Context, userID, noteID uuid.UUID, filename, contentType string, body io.Reader, size int64) (*noteEntity.Attachment, *errors.AppError)
	ListAttachments(ctx context.Context, userID, noteID uuid.UUID) ([]noteEntity.Attachment, *errors.AppError)
}

type notesService struct {
	repo    repository.NoteRepository
	storage storage.ObjectStorage
}

func NewNotesService(repo repository.NoteRepository, store storage.ObjectStorage) NotesService {
	return &notesService{repo: repo, storage: store}
}

func (s *notesService) Get(ctx context.Context, userID, noteID uuid.UUID) (*noteEntity.Note, *errors.AppError) {
	note, err := s.repo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load note", err)
	}
	if note == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "note not found", nil)
	}
	return note, nil
}

func (s *notesService) List(ctx context.Context, userID uuid.UUID, tag string, p params.QueryParams) (*entity.Pagination[noteEntity.Note], *errors.AppError) {
	page, err := s.repo.List(ctx, userID, tag, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load notes", err)
	}
	return page, nil
}

func (s *notesService) ListTags(ctx context.Context, userID uuid.UUID) ([]string, *errors.AppError) {
	tags, err := s.repo.ListTags(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load tags", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (s *notesService) Create(ctx context.Context, userID uuid.UUID, req *dto.SaveNoteRequest) (uuid.UUID, *errors.AppError) {
	note := &noteEntity.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	if err := s.repo.Insert(ctx, note); err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInternalServer, "failed to save note", err)
	}

	logger.Info("NotesService:Create", "user_id", userID, "note_id", note.ID)
	return note.ID, nil
}

func (s *notesService) Update(ctx context.Context, userID uuid.UUID, req *dto.SaveNoteRequest) *errors.AppError {
	noteID, err := uuid.Parse(req.ID)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid note id", err)
	}

	note := &noteEntity.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}
	note.ID = noteID
	if note.Tags == nil {
		note.Tags = []string{}
	}

	if err := s.repo.Update(ctx, note); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "note not found or not owned", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "failed to update note", err)
	}
	return nil
}

func (s *notesService) Delete(ctx context.Context, userID, noteID uuid.UUID) *errors.AppError {
	if err := s.repo.Delete(ctx, noteID, userID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "note not found", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete note", err)
	}
	return nil
}

// UploadAttachment stores the blob first and records the row after, so a
// failed insert leaves an orphan object rather than a dangling row.
func (s *notesService) UploadAttachment(ctx context.Context, userID, noteID uuid.UUID, filename, contentType string, body io.Reader, size int64) (*noteEntity.Attachment, *errors.AppError) {
	note, err := s.repo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load note", err)
	}
	if note == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "note not found", nil)
	}

	key := storage.AttachmentKey(noteID, filename)
	if err := s.storage.Upload(ctx, key, contentType, body, size); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store attachment", err)
	}

	att := &noteEntity.Attachment{
		NoteID:      noteID,
		Filename:    filename,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        size,
	}
	if err := s.repo.InsertAttachment(ctx, att); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to record attachment", err)
	}
	return att, nil
}

func (s *notesService) ListAttachments(ctx context.Context, userID, noteID uuid.UUID) ([]noteEntity.Attachment, *errors.AppError) {
	note, err := s.repo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load note", err)
	}
	if note == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "note not found", nil)
	}

	atts, err := s.repo.ListAttachments(ctx, noteID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load attachments", err)
	}
	return atts, nil
}
