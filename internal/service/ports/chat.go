package ports

import (
	"context"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
)

type ChatRepo interface {
	GetByEventID(ctx context.Context, eventID string) (*domain.Chat, error)
	GetInfoByEventID(ctx context.Context, eventID string) (*domain.ChatInfo, error)
	IsMember(ctx context.Context, chatID, userID string) (bool, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*domain.Message, error)
	GetMessageByID(ctx context.Context, id string) (*domain.Message, error)
	UpdateMessage(ctx context.Context, id, content string) (*domain.Message, error)
	SoftDeleteMessage(ctx context.Context, id string) error
	ListMembers(ctx context.Context, chatID string) ([]*domain.ChatMemberInfo, error)
	FindExpired(ctx context.Context, now time.Time) ([]*domain.Chat, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}
