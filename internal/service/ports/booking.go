package ports

import (
	"context"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
)

type BookingRepo interface {
	Book(ctx context.Context, b *domain.Booking, chatID string) (*domain.BookingResult, error)
	Cancel(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
