package service

import (
	"context"
	"database/sql"

	"dayboard/core/errors"
	"dayboard/core/logger"
	"dayboard/modules/calendar/dto"
	"dayboard/modules/calendar/entity"
	"dayboard/modules/calendar/repository"

	"github.com/google/uuid"
)

type CalendarService interface {
	ListEvents(ctx context.Context, userID uuid.UUID, carpeta string) ([]entity.CalendarEvent, *errors.AppError)
	ListFolders(ctx context.Context, userID uuid.UUID) ([]string, *errors.AppError)
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.SaveEventRequest) (uuid.UUID, *errors.AppError)
	UpdateEvent(ctx context.Context, userID uuid.UUID, req *dto.SaveEventRequest) *errors.AppError
	DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError
}

type calendarService struct {
	repo repository.EventRepository
}

func NewCalendarService(repo repository.EventRepository) CalendarService {
	return &calendarService{repo: repo}
}

// ListEvents returns every event for the user, manual and imported alike;
// a non-empty carpeta restricts the result to one folder.
func (s *calendarService) ListEvents(ctx context.Context, userID uuid.UUID, carpeta string) ([]entity.CalendarEvent, *errors.AppError) {
	var (
		events []entity.CalendarEvent
		err    error
	)
	if carpeta != "" {
		events, err = s.repo.ListByUserAndFolder(ctx, userID, carpeta)
	} else {
		events, err = s.repo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load events", err)
	}
	if events == nil {
		events = []entity.CalendarEvent{}
	}
	return events, nil
}

func (s *calendarService) ListFolders(ctx context.Context, userID uuid.UUID) ([]string, *errors.AppError) {
	folders, err := s.repo.ListFolders(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load folders", err)
	}
	if folders == nil {
		folders = []string{}
	}
	return folders, nil
}

func (s *calendarService) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.SaveEventRequest) (uuid.UUID, *errors.AppError) {
	event := &entity.CalendarEvent{
		UserID:  userID,
		Title:   req.Title,
		Start:   req.Start,
		End:     req.End,
		Color:   req.Color,
		Carpeta: req.Carpeta,
	}

	id, err := s.repo.Insert(ctx, event)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInternalServer, "failed to save event", err)
	}

	logger.Info("CalendarService:CreateEvent", "user_id", userID, "event_id", id)
	return id, nil
}

func (s *calendarService) UpdateEvent(ctx context.Context, userID uuid.UUID, req *dto.SaveEventRequest) *errors.AppError {
	eventID, err := uuid.Parse(req.ID)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid event id", err)
	}

	event := &entity.CalendarEvent{
		UserID:  userID,
		Title:   req.Title,
		Start:   req.Start,
		End:     req.End,
		Color:   req.Color,
		Carpeta: req.Carpeta,
	}
	event.ID = eventID

	if err := s.repo.Update(ctx, event); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "event not found or not owned", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "failed to update event", err)
	}
	return nil
}

func (s *calendarService) DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError {
	if err := s.repo.Delete(ctx, eventID, userID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete event", err)
	}
	return nil
}
