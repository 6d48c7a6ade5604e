package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/GauravTheBeginner/event-backend/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestEventService_Create_ProvisionsChat(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	date := time.Date(2026, 10, 10, 19, 0, 0, 0, time.UTC)

	var gotEvent *domain.Event
	var gotChat *domain.Chat
	repo.EXPECT().CreateWithChat(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.Event, chat *domain.Chat) {
			gotEvent = e
			gotChat = chat
		}).Return(nil)

	created, err := svc.Create(context.Background(), "u1", domain.CreateEventInput{
		Name: "Concert",
		Date: &date,
	})

	require.NoError(t, err)
	require.NotNil(t, created.Chat)
	assert.Equal(t, gotEvent.ID, gotChat.EventID)
	assert.Equal(t, "Concert", gotChat.EventName)
	assert.Equal(t, domain.OriginInteractive, created.Event.Origin)
	assert.True(t, created.Event.IsPublic)

	// Expiry is the event date plus the grace period.
	require.NotNil(t, gotChat.ExpiresAt)
	assert.Equal(t, date.AddDate(0, 0, 2), *gotChat.ExpiresAt)
}

func TestEventService_Create_BulkOriginSkipsChat(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	repo.EXPECT().CreateWithChat(mock.Anything, mock.Anything, (*domain.Chat)(nil)).Return(nil)

	created, err := svc.Create(context.Background(), "u1", domain.CreateEventInput{
		Name:   "Imported",
		Origin: domain.OriginBulkFile,
	})

	require.NoError(t, err)
	assert.Nil(t, created.Chat)
}

func TestEventService_Create_DatelessChatNeverExpires(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	var gotChat *domain.Chat
	repo.EXPECT().CreateWithChat(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.Event, chat *domain.Chat) {
			gotChat = chat
		}).Return(nil)

	_, err := svc.Create(context.Background(), "u1", domain.CreateEventInput{Name: "TBD"})

	require.NoError(t, err)
	require.NotNil(t, gotChat)
	assert.Nil(t, gotChat.ExpiresAt)
}

func TestEventService_Create_RequiresName(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	_, err := svc.Create(context.Background(), "u1", domain.CreateEventInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_DateChangeMovesChatExpiry(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	event := &domain.Event{
		ID:          "e1",
		Name:        "Concert",
		Origin:      domain.OriginInteractive,
		CreatedByID: "u1",
	}
	newDate := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	var gotExpiry *time.Time
	var gotTouch bool
	repo.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.Event, chatExpiry *time.Time, touchChat bool) {
			gotExpiry = chatExpiry
			gotTouch = touchChat
		}).Return(nil)

	updated, err := svc.Update(context.Background(), "u1", "e1", domain.UpdateEventInput{Date: &newDate})

	require.NoError(t, err)
	assert.True(t, gotTouch)
	require.NotNil(t, gotExpiry)
	assert.Equal(t, newDate.AddDate(0, 0, 2), *gotExpiry)
	assert.Equal(t, newDate, *updated.Date)
}

func TestEventService_Update_BulkOriginLeavesChatAlone(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	event := &domain.Event{
		ID:          "e1",
		Origin:      domain.OriginCrawl,
		CreatedByID: "u1",
	}
	newDate := time.Date(2026, 11, 1, 20, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything, (*time.Time)(nil), false).Return(nil)

	_, err := svc.Update(context.Background(), "u1", "e1", domain.UpdateEventInput{Date: &newDate})

	require.NoError(t, err)
}

func TestEventService_Update_NotOwner(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatedByID: "u1"}, nil)

	name := "Renamed"
	_, err := svc.Update(context.Background(), "intruder", "e1", domain.UpdateEventInput{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestEventService_Delete_NotOwner(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatedByID: "u1"}, nil)

	err := svc.Delete(context.Background(), "intruder", "e1")

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestEventService_Delete_PropagatesRepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 2, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatedByID: "u1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "e1").Return(errors.New("db down"))

	err := svc.Delete(context.Background(), "u1", "e1")

	assert.Error(t, err)
}
