package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/GauravTheBeginner/event-backend/internal/service/ports/mocks"
)

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	eventRepo   *mocks.MockEventRepo
	chatRepo    *mocks.MockChatRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		chatRepo:    mocks.NewMockChatRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewBookingService(f.bookingRepo, f.eventRepo, f.chatRepo, f.userRepo, f.notifier, newTestLogger(t))
	return f
}

func TestBookingService_Book_JoinsChat(t *testing.T) {
	f := newBookingFixture(t)

	event := &domain.Event{ID: "e1", Name: "Concert", CreatedByID: "creator"}
	user := &domain.User{ID: "u1", Name: "Alice"}

	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(&domain.Chat{ID: "c1", EventID: "e1"}, nil)

	f.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything, "c1").
		RunAndReturn(func(_ context.Context, b *domain.Booking, _ string) (*domain.BookingResult, error) {
			return &domain.BookingResult{Booking: b, AddedToChat: true}, nil
		})
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, event).Return()

	result, err := f.svc.Book(context.Background(), "u1", "e1", 2, 50)

	require.NoError(t, err)
	assert.False(t, result.AlreadyBooked)
	assert.True(t, result.AddedToChat)
	assert.Equal(t, 2, result.Booking.Qty)
	assert.NotEmpty(t, result.Booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_DuplicateIsNotAnError(t *testing.T) {
	f := newBookingFixture(t)

	existing := &domain.Booking{ID: "b-old", EventID: "e1", UserID: "u1"}

	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(&domain.Chat{ID: "c1"}, nil)
	f.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything, "c1").
		Return(&domain.BookingResult{Booking: existing, AlreadyBooked: true}, nil)

	result, err := f.svc.Book(context.Background(), "u1", "e1", 1, 0)

	require.NoError(t, err)
	assert.True(t, result.AlreadyBooked)
	assert.Equal(t, "b-old", result.Booking.ID)
	// No notification for an absorbed duplicate.
	f.notifier.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Book_ChatlessEventStillBooks(t *testing.T) {
	f := newBookingFixture(t)

	event := &domain.Event{ID: "e1", Origin: domain.OriginBulkFile}
	user := &domain.User{ID: "u1"}

	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(nil, domain.ErrChatNotFound)

	f.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything, "").
		RunAndReturn(func(_ context.Context, b *domain.Booking, _ string) (*domain.BookingResult, error) {
			return &domain.BookingResult{Booking: b}, nil
		})
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, event).Return()

	result, err := f.svc.Book(context.Background(), "u1", "e1", 1, 0)

	require.NoError(t, err)
	assert.False(t, result.AddedToChat)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_UnknownEvent(t *testing.T) {
	f := newBookingFixture(t)

	f.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := f.svc.Book(context.Background(), "u1", "missing", 1, 0)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Cancel(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1"}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1"}

	f.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "u1").Return(booking, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, event).Return()

	err := f.svc.Cancel(context.Background(), "u1", "b1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Cancel_SomeoneElsesBooking(t *testing.T) {
	f := newBookingFixture(t)

	// The repository hides other users' bookings behind not-found.
	f.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "intruder").
		Return(nil, domain.ErrBookingNotFound)

	err := f.svc.Cancel(context.Background(), "intruder", "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByUser_PropagatesError(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, errors.New("db down"))

	_, err := f.svc.ListByUser(context.Background(), "u1")

	assert.Error(t, err)
}
