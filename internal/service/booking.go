package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/GauravTheBeginner/event-backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	chatRepo    ports.ChatRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	chatRepo ports.ChatRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book reserves the event for the user and joins them to its chat as one
// atomic unit. Booking the same event twice is not an error: the result
// carries AlreadyBooked and the original booking.
func (s *BookingService) Book(ctx context.Context, userID, eventID string, qty int, totalPrice float64) (*domain.BookingResult, error) {
	if qty < 1 {
		qty = 1
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	// Bulk-origin events carry no chat; the booking then stands alone.
	var chatID string
	chat, err := s.chatRepo.GetByEventID(ctx, eventID)
	switch {
	case err == nil:
		chatID = chat.ID
	case errors.Is(err, domain.ErrChatNotFound):
	default:
		return nil, fmt.Errorf("get chat: %w", err)
	}

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		EventID:    eventID,
		UserID:     userID,
		Qty:        qty,
		TotalPrice: totalPrice,
		CreatedAt:  time.Now().UTC(),
	}

	result, err := s.bookingRepo.Book(ctx, booking, chatID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if result.AlreadyBooked {
		s.logger.Info("duplicate booking absorbed",
			logger.String("booking_id", result.Booking.ID),
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
		)
		return result, nil
	}

	s.logger.Info("booking created",
		logger.String("booking_id", result.Booking.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Any("added_to_chat", result.AddedToChat),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, event)

	return result, nil
}

// Cancel deletes the booking and revokes chat membership unless the user
// created the event. The repository reports someone else's booking as not
// found rather than revealing its existence.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	booking, err := s.bookingRepo.Cancel(ctx, bookingID, userID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", userID),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), booking)

	return nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, booking *domain.Booking) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", booking.UserID),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.String("event_id", booking.EventID),
		)
		return
	}

	s.notifier.NotifyBookingCancelled(ctx, user, event)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
