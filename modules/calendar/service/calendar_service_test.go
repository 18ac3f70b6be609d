package service

import (
	"context"
	"database/sql"
	"testing"

	"dayboard/core/errors"
	"dayboard/modules/calendar/dto"
	"dayboard/modules/calendar/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepository struct {
	events []entity.CalendarEvent
}

func (f *fakeEventRepository) FindByUserAndKey(_ context.Context, userID uuid.UUID, title, start, end string) (*entity.CalendarEvent, error) {
	for i := range f.events {
		e := &f.events[i]
		if e.UserID == userID && e.Title == title && e.Start == start && e.End == end {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.CalendarEvent, error) {
	var out []entity.CalendarEvent
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepository) ListByUserAndFolder(_ context.Context, userID uuid.UUID, carpeta string) ([]entity.CalendarEvent, error) {
	var out []entity.CalendarEvent
	for _, e := range f.events {
		if e.UserID == userID && e.Carpeta == carpeta {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepository) ListFolders(_ context.Context, userID uuid.UUID) ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range f.events {
		if e.UserID == userID && e.Carpeta != "" {
			if _, ok := seen[e.Carpeta]; !ok {
				seen[e.Carpeta] = struct{}{}
				out = append(out, e.Carpeta)
			}
		}
	}
	return out, nil
}

func (f *fakeEventRepository) Insert(_ context.Context, event *entity.CalendarEvent) (uuid.UUID, error) {
	event.ID = uuid.New()
	f.events = append(f.events, *event)
	return event.ID, nil
}

func (f *fakeEventRepository) Update(_ context.Context, event *entity.CalendarEvent) error {
	for i := range f.events {
		if f.events[i].ID == event.ID && f.events[i].UserID == event.UserID {
			f.events[i].Title = event.Title
			f.events[i].Start = event.Start
			f.events[i].End = event.End
			f.events[i].Color = event.Color
			f.events[i].Carpeta = event.Carpeta
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeEventRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i := range f.events {
		if f.events[i].ID == id && f.events[i].UserID == userID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func saveReq(userID uuid.UUID) *dto.SaveEventRequest {
	return &dto.SaveEventRequest{
		UserID:  userID.String(),
		Title:   "Dentista",
		Start:   "2024-04-01 09:00:00",
		End:     "2024-04-01 10:00:00",
		Color:   "#ff9f89",
		Carpeta: "Personal",
	}
}

func TestCreateAndListEvents(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := NewCalendarService(repo)
	userID := uuid.New()

	id, appErr := svc.CreateEvent(context.Background(), userID, saveReq(userID))
	require.Nil(t, appErr)
	assert.NotEqual(t, uuid.Nil, id)

	events, appErr := svc.ListEvents(context.Background(), userID, "")
	require.Nil(t, appErr)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentista", events[0].Title)
	assert.Nil(t, events[0].Source)
}

func TestListEventsByFolder(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := NewCalendarService(repo)
	userID := uuid.New()

	_, appErr := svc.CreateEvent(context.Background(), userID, saveReq(userID))
	require.Nil(t, appErr)

	other := saveReq(userID)
	other.Carpeta = "Trabajo"
	_, appErr = svc.CreateEvent(context.Background(), userID, other)
	require.Nil(t, appErr)

	events, appErr := svc.ListEvents(context.Background(), userID, "Trabajo")
	require.Nil(t, appErr)
	require.Len(t, events, 1)
	assert.Equal(t, "Trabajo", events[0].Carpeta)

	folders, appErr := svc.ListFolders(context.Background(), userID)
	require.Nil(t, appErr)
	assert.ElementsMatch(t, []string{"Personal", "Trabajo"}, folders)
}

func TestListEventsEmptyIsNotNil(t *testing.T) {
	svc := NewCalendarService(&fakeEventRepository{})

	events, appErr := svc.ListEvents(context.Background(), uuid.New(), "")
	require.Nil(t, appErr)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestUpdateEvent(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := NewCalendarService(repo)
	userID := uuid.New()

	id, appErr := svc.CreateEvent(context.Background(), userID, saveReq(userID))
	require.Nil(t, appErr)

	req := saveReq(userID)
	req.ID = id.String()
	req.Title = "Dentista (cambiado)"
	require.Nil(t, svc.UpdateEvent(context.Background(), userID, req))
	assert.Equal(t, "Dentista (cambiado)", repo.events[0].Title)
}

func TestUpdateEventNotOwned(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := NewCalendarService(repo)
	owner := uuid.New()

	id, appErr := svc.CreateEvent(context.Background(), owner, saveReq(owner))
	require.Nil(t, appErr)

	intruder := uuid.New()
	req := saveReq(intruder)
	req.ID = id.String()
	appErr = svc.UpdateEvent(context.Background(), intruder, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUpdateEventBadID(t *testing.T) {
	svc := NewCalendarService(&fakeEventRepository{})
	userID := uuid.New()

	req := saveReq(userID)
	req.ID = "not-a-uuid"
	appErr := svc.UpdateEvent(context.Background(), userID, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestDeleteEvent(t *testing.T) {
	repo := &fakeEventRepository{}
	svc := NewCalendarService(repo)
	userID := uuid.New()

	id, appErr := svc.CreateEvent(context.Background(), userID, saveReq(userID))
	require.Nil(t, appErr)

	require.Nil(t, svc.DeleteEvent(context.Background(), userID, id))
	assert.Empty(t, repo.events)

	appErr = svc.DeleteEvent(context.Background(), userID, id)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
