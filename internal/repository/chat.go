package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ChatRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewChatRepo(db *dbpg.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ChatRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Chat, error) {
	query := `SELECT id, event_id, event_name, expires_at, created_at
			  FROM chats
			  WHERE event_id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}

	var c domain.Chat
	var expiresAt sql.NullTime
	if err = row.Scan(&c.ID, &c.EventID, &c.EventName, &expiresAt, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("scan chat: %w", err)
	}
	if expiresAt.Valid {
		c.ExpiresAt = &expiresAt.Time
	}

	return &c, nil
}

func (r *ChatRepository) GetInfoByEventID(ctx context.Context, eventID string) (*domain.ChatInfo, error) {
	query := `SELECT c.id, c.event_id, c.event_name, c.expires_at, c.created_at,
					 (SELECT COUNT(*) FROM chat_members m WHERE m.chat_id = c.id),
					 (SELECT COUNT(*) FROM chat_messages s WHERE s.chat_id = c.id)
			  FROM chats c
			  WHERE c.event_id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get chat info: %w", err)
	}

	var info domain.ChatInfo
	var expiresAt sql.NullTime
	if err = row.Scan(
		&info.ID, &info.EventID, &info.EventName, &expiresAt, &info.CreatedAt,
		&info.MemberCount, &info.MessageCount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("scan chat info: %w", err)
	}
	if expiresAt.Valid {
		info.ExpiresAt = &expiresAt.Time
	}

	return &info, nil
}

func (r *ChatRepository) IsMember(ctx context.Context, chatID, userID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM chat_members WHERE chat_id=$1 AND user_id=$2
			  )`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, chatID, userID)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan membership: %w", err)
	}

	return exists, nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	mentions, err := marshalMentions(m.Mentions)
	if err != nil {
		return err
	}

	query := `INSERT INTO chat_messages (id, chat_id, sender_id, content, mentions, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.ChatID, m.SenderID, m.Content, mentions, m.CreatedAt,
	); err != nil {
		return classifyStoreErr(fmt.Errorf("insert message: %w", err))
	}

	return nil
}

// ListMessages returns non-deleted messages newest-first with the sender's
// public profile attached; the service layer flips the page to
// chronological order before returning it to callers.
func (r *ChatRepository) ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*domain.Message, error) {
	query := `SELECT m.id, m.chat_id, c.event_id, m.sender_id, m.content, m.mentions,
					 m.edited_at, m.created_at, u.id, u.name, u.email, u.avatar_url
			  FROM chat_messages m
			  JOIN chats c ON c.id = m.chat_id
			  JOIN users u ON u.id = m.sender_id
			  WHERE m.chat_id = $1 AND m.deleted_at IS NULL
			  ORDER BY m.created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, chatID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var res []*domain.Message
	for rows.Next() {
		m, err := scanMessageWithSender(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

// GetMessageByID resolves a message regardless of soft-delete state,
// including the owning event id needed for fan-out.
func (r *ChatRepository) GetMessageByID(ctx context.Context, id string) (*domain.Message, error) {
	query := `SELECT m.id, m.chat_id, c.event_id, m.sender_id, m.content, m.mentions,
					 m.edited_at, m.deleted_at, m.created_at
			  FROM chat_messages m
			  JOIN chats c ON c.id = m.chat_id
			  WHERE m.id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}

	var m domain.Message
	var mentions []byte
	var editedAt, deletedAt sql.NullTime
	if err = row.Scan(
		&m.ID, &m.ChatID, &m.EventID, &m.SenderID, &m.Content, &mentions,
		&editedAt, &deletedAt, &m.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}
	if err = unmarshalMentions(mentions, &m.Mentions); err != nil {
		return nil, err
	}
	if editedAt.Valid {
		m.EditedAt = &editedAt.Time
	}
	if deletedAt.Valid {
		m.DeletedAt = &deletedAt.Time
	}

	return &m, nil
}

// UpdateMessage replaces the content and stamps edited_at, returning the
// updated row with the sender profile attached.
func (r *ChatRepository) UpdateMessage(ctx context.Context, id, content string) (*domain.Message, error) {
	query := `UPDATE chat_messages m
			  SET content=$2, edited_at=$3
			  FROM chats c, users u
			  WHERE m.id=$1 AND c.id = m.chat_id AND u.id = m.sender_id
			  RETURNING m.id, m.chat_id, c.event_id, m.sender_id, m.content, m.mentions,
						m.edited_at, m.created_at, u.id, u.name, u.email, u.avatar_url`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, content, time.Now().UTC())
	if err != nil {
		return nil, classifyStoreErr(fmt.Errorf("update message: %w", err))
	}

	m, err := scanMessageWithSender(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("scan updated message: %w", err)
	}

	return m, nil
}

// SoftDeleteMessage flips the message into its deleted state; the content
// stays in storage and only reads exclude it.
func (r *ChatRepository) SoftDeleteMessage(ctx context.Context, id string) error {
	query := `UPDATE chat_messages SET deleted_at=$2 WHERE id=$1 AND deleted_at IS NULL`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, time.Now().UTC()); err != nil {
		return classifyStoreErr(fmt.Errorf("soft delete message: %w", err))
	}
	return nil
}

func (r *ChatRepository) ListMembers(ctx context.Context, chatID string) ([]*domain.ChatMemberInfo, error) {
	query := `SELECT u.id, u.name, u.email, u.avatar_url, m.joined_at
			  FROM chat_members m
			  JOIN users u ON u.id = m.user_id
			  WHERE m.chat_id = $1
			  ORDER BY m.joined_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.ChatMemberInfo
	for rows.Next() {
		var info domain.ChatMemberInfo
		if err = rows.Scan(
			&info.User.ID, &info.User.Name, &info.User.Email, &info.User.AvatarURL,
			&info.JoinedAt,
		); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, &info)
	}

	return res, rows.Err()
}

// FindExpired returns chats whose expiry has passed. Chats without an
// expiry never show up here.
func (r *ChatRepository) FindExpired(ctx context.Context, now time.Time) ([]*domain.Chat, error) {
	query := `SELECT id, event_id, event_name, expires_at, created_at
			  FROM chats
			  WHERE expires_at IS NOT NULL AND expires_at < $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("find expired chats: %w", err)
	}
	defer rows.Close()

	var res []*domain.Chat
	for rows.Next() {
		var c domain.Chat
		var expiresAt sql.NullTime
		if err = rows.Scan(&c.ID, &c.EventID, &c.EventName, &expiresAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expired chat: %w", err)
		}
		if expiresAt.Valid {
			c.ExpiresAt = &expiresAt.Time
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

// DeleteByIDs removes chats in bulk; members and messages go with them via
// the schema's cascade, not by iterating children here.
func (r *ChatRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `DELETE FROM chats WHERE id = ANY($1)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return 0, classifyStoreErr(fmt.Errorf("delete chats: %w", err))
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete rows affected: %w", err)
	}

	return deleted, nil
}

func scanMessageWithSender(scan func(dest ...any) error) (*domain.Message, error) {
	var m domain.Message
	var sender domain.User
	var mentions []byte
	var editedAt sql.NullTime
	if err := scan(
		&m.ID, &m.ChatID, &m.EventID, &m.SenderID, &m.Content, &mentions,
		&editedAt, &m.CreatedAt, &sender.ID, &sender.Name, &sender.Email, &sender.AvatarURL,
	); err != nil {
		return nil, err
	}
	if err := unmarshalMentions(mentions, &m.Mentions); err != nil {
		return nil, err
	}
	if editedAt.Valid {
		m.EditedAt = &editedAt.Time
	}
	m.Sender = &sender
	return &m, nil
}

func marshalMentions(mentions []string) ([]byte, error) {
	if len(mentions) == 0 {
		return []byte("[]"), nil
	}
	data, err := json.Marshal(mentions)
	if err != nil {
		return nil, fmt.Errorf("marshal mentions: %w", err)
	}
	return data, nil
}

func unmarshalMentions(data []byte, dst *[]string) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal mentions: %w", err)
	}
	return nil
}
