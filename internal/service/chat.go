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

const defaultMessagePageSize = 50

type ChatService struct {
	chatRepo    ports.ChatRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	broadcaster ports.Broadcaster
	logger      logger.Logger
}

func NewChatService(
	chatRepo ports.ChatRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	broadcaster ports.Broadcaster,
	logger logger.Logger,
) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (s *ChatService) GetByEventID(ctx context.Context, eventID string) (*domain.ChatInfo, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	return s.chatRepo.GetInfoByEventID(ctx, eventID)
}

// Post appends a message to the event's chat. Only current members may
// post; the stored message comes back with the author's public profile and
// is fanned out to the room after the write commits.
func (s *ChatService) Post(ctx context.Context, userID, eventID, content string, mentions []string) (*domain.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	chat, err := s.chatRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}

	member, err := s.chatRepo.IsMember(ctx, chat.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return nil, domain.ErrNotChatMember
	}

	message := &domain.Message{
		ID:        uuid.New().String(),
		ChatID:    chat.ID,
		EventID:   eventID,
		SenderID:  userID,
		Content:   content,
		Mentions:  mentions,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	sender, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}
	message.Sender = sender

	s.broadcaster.Emit(eventID, "new_message", message)

	return message, nil
}

// Messages returns one page of the chat's non-deleted messages in
// chronological order. Storage keeps them newest-first, so the page is
// reversed before returning.
func (s *ChatService) Messages(ctx context.Context, eventID string, page, limit int) ([]*domain.Message, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultMessagePageSize
	}

	chat, err := s.chatRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}

	messages, err := s.chatRepo.ListMessages(ctx, chat.ID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// Edit replaces the content of the caller's own message and stamps it as
// edited. Identity and chat of the message never change.
func (s *ChatService) Edit(ctx context.Context, userID, messageID, content string) (*domain.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	message, err := s.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if message.SenderID != userID {
		return nil, domain.ErrNotMessageAuthor
	}

	updated, err := s.chatRepo.UpdateMessage(ctx, messageID, content)
	if err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}

	s.broadcaster.Emit(updated.EventID, "message_updated", updated)

	return updated, nil
}

// Delete soft-deletes the caller's own message: content stays in storage
// but reads exclude it. Returns the owning event id for the caller's
// convenience.
func (s *ChatService) Delete(ctx context.Context, userID, messageID string) (string, error) {
	message, err := s.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return "", fmt.Errorf("get message: %w", err)
	}
	if message.SenderID != userID {
		return "", domain.ErrNotMessageAuthor
	}

	if err = s.chatRepo.SoftDeleteMessage(ctx, messageID); err != nil {
		return "", fmt.Errorf("delete message: %w", err)
	}

	s.broadcaster.Emit(message.EventID, "message_deleted", map[string]string{"id": messageID})

	return message.EventID, nil
}

// Members lists the chat's memberships oldest-join first, each annotated
// with whether that member created the event.
func (s *ChatService) Members(ctx context.Context, eventID string) ([]*domain.ChatMemberInfo, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	chat, err := s.chatRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}

	members, err := s.chatRepo.ListMembers(ctx, chat.ID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	for _, m := range members {
		m.IsCreator = m.User.ID == event.CreatedByID
	}

	return members, nil
}

// CleanupExpired deletes every chat past its expiry; members and messages
// cascade at the storage layer. An empty sweep is a no-op.
func (s *ChatService) CleanupExpired(ctx context.Context) ([]*domain.Chat, error) {
	expired, err := s.chatRepo.FindExpired(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("find expired chats: %w", err)
	}
	if len(expired) == 0 {
		return nil, nil
	}

	ids := make([]string, len(expired))
	for i, c := range expired {
		ids[i] = c.ID
	}

	deleted, err := s.chatRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("delete expired chats: %w", err)
	}

	s.logger.Info("expired chats deleted", logger.Int("count", int(deleted)))

	return expired, nil
}
