package ports

import (
	"context"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
)

type EventRepo interface {
	CreateWithChat(ctx context.Context, e *domain.Event, chat *domain.Chat) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event, chatExpiry *time.Time, touchChat bool) error
	Delete(ctx context.Context, id string) error
}
