package ports

import (
	"context"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, event *domain.Event)
}
