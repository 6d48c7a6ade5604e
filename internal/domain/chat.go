package domain

import "time"

// Chat is an ephemeral discussion room scoped 1:1 to an interactively
// created event. ExpiresAt is nil when the event has no date; such chats
// only die with their event.
type Chat struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	EventName string     `json:"event_name"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

type ChatMember struct {
	ChatID   string    `json:"chat_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// ChatMemberInfo is a membership annotated with the member's public
// profile and whether the member created the owning event.
type ChatMemberInfo struct {
	User      User      `json:"user"`
	JoinedAt  time.Time `json:"joined_at"`
	IsCreator bool      `json:"is_creator"`
}

// ChatInfo is a chat together with its member and message counts.
type ChatInfo struct {
	Chat
	MemberCount  int `json:"member_count"`
	MessageCount int `json:"message_count"`
}

type Message struct {
	ID        string     `json:"id"`
	ChatID    string     `json:"chat_id"`
	EventID   string     `json:"event_id"`
	SenderID  string     `json:"sender_id"`
	Content   string     `json:"content"`
	Mentions  []string   `json:"mentions,omitempty"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
	DeletedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	Sender    *User      `json:"sender,omitempty"`
}

// Deleted reports whether the message has been soft-deleted. Deleted
// messages stay in storage but are excluded from reads.
func (m *Message) Deleted() bool {
	return m.DeletedAt != nil
}
