package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/GauravTheBeginner/event-backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo            ports.EventRepo
	gracePeriodDays int
	logger          logger.Logger
}

func NewEventService(repo ports.EventRepo, gracePeriodDays int, logger logger.Logger) *EventService {
	return &EventService{
		repo:            repo,
		gracePeriodDays: gracePeriodDays,
		logger:          logger,
	}
}

// Create persists the event and, for interactive-origin events, provisions
// its chat with the creator as first member in the same transaction.
// Machine-ingested events (bulk file, crawl) get no room: nobody joins
// them interactively.
func (s *EventService) Create(ctx context.Context, creatorID string, input domain.CreateEventInput) (*domain.CreatedEvent, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", domain.ErrValidation)
	}

	origin := input.Origin
	if origin == "" {
		origin = domain.OriginInteractive
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Date:        input.Date,
		Location:    input.Location,
		City:        input.City,
		Venue:       input.Venue,
		Address:     input.Address,
		Price:       input.Price,
		Image:       input.Image,
		BookingURL:  input.BookingURL,
		Origin:      origin,
		IsPublic:    isPublic,
		CreatedByID: creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var chat *domain.Chat
	if !origin.Bulk() {
		chat = &domain.Chat{
			ID:        uuid.New().String(),
			EventID:   event.ID,
			EventName: event.Name,
			ExpiresAt: s.chatExpiry(event.Date),
			CreatedAt: now,
		}
	}

	if err := s.repo.CreateWithChat(ctx, event, chat); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("origin", string(event.Origin)),
		logger.String("created_by", creatorID),
	)

	return &domain.CreatedEvent{Event: event, Chat: chat}, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, f)
}

// Update applies a partial update. A date change on an interactive-origin
// event moves the chat's expiry in the same atomic unit; bulk-origin
// events have no chat to touch.
func (s *EventService) Update(ctx context.Context, actorID, eventID string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatedByID != actorID {
		return nil, domain.ErrNotOwner
	}

	applyEventUpdate(event, input)
	event.UpdatedAt = time.Now().UTC()

	dateChanged := input.Date != nil
	touchChat := dateChanged && !event.Origin.Bulk()
	var chatExpiry *time.Time
	if touchChat {
		chatExpiry = s.chatExpiry(event.Date)
	}

	if err = s.repo.Update(ctx, event, chatExpiry, touchChat); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", eventID),
		logger.Any("date_changed", dateChanged),
	)

	return event, nil
}

// Delete removes the event; the storage layer cascades to its chat,
// bookings and wishlist entries, and through the chat to members and
// messages.
func (s *EventService) Delete(ctx context.Context, actorID, eventID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event.CreatedByID != actorID {
		return domain.ErrNotOwner
	}

	if err = s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", eventID))

	return nil
}

// chatExpiry derives the room's lifetime: event date plus the configured
// grace period. Dateless events get a chat that never expires on its own.
func (s *EventService) chatExpiry(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	expiry := date.AddDate(0, 0, s.gracePeriodDays)
	return &expiry
}

func applyEventUpdate(e *domain.Event, in domain.UpdateEventInput) {
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Date != nil {
		e.Date = in.Date
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.City != nil {
		e.City = *in.City
	}
	if in.Venue != nil {
		e.Venue = *in.Venue
	}
	if in.Address != nil {
		e.Address = *in.Address
	}
	if in.Price != nil {
		e.Price = *in.Price
	}
	if in.Image != nil {
		e.Image = *in.Image
	}
	if in.BookingURL != nil {
		e.BookingURL = *in.BookingURL
	}
	if in.IsPublic != nil {
		e.IsPublic = *in.IsPublic
	}
}
