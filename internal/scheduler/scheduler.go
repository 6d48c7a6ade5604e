package scheduler

import (
	"context"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type chatSweeper interface {
	CleanupExpired(ctx context.Context) ([]*domain.Chat, error)
}

// Scheduler periodically runs the chat expiry sweep. The sweep itself is
// idempotent; this type only supplies the cadence.
type Scheduler struct {
	chatService chatSweeper
	interval    time.Duration
	logger      logger.Logger
}

func New(
	chatService chatSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		chatService: chatService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	deleted, err := s.chatService.CleanupExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired chats",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, c := range deleted {
		s.logger.Info("chat expired",
			logger.String("chat_id", c.ID),
			logger.String("event_id", c.EventID),
			logger.String("event_name", c.EventName),
		)
	}
}
