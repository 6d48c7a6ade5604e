package dto

import (
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date,omitempty"`
	Location    string `json:"location"`
	City        string `json:"city"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
	BookingURL  string `json:"booking_url,omitempty"`
	Origin      string `json:"origin"`
	IsPublic    bool   `json:"is_public"`
	CreatedByID string `json:"created_by_id"`
	CreatedAt   string `json:"created_at"`
}

type ChatResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

type ChatInfoResponse struct {
	ChatResponse
	MemberCount  int `json:"member_count"`
	MessageCount int `json:"message_count"`
}

type CreatedEventResponse struct {
	Event EventResponse `json:"event"`
	Chat  *ChatResponse `json:"chat,omitempty"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	EventID    string  `json:"event_id"`
	UserID     string  `json:"user_id"`
	Qty        int     `json:"qty"`
	TotalPrice float64 `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

type BookingResultResponse struct {
	Booking       BookingResponse `json:"booking"`
	AlreadyBooked bool            `json:"already_booked"`
	AddedToChat   bool            `json:"added_to_chat"`
	Message       string          `json:"message"`
}

type MessageResponse struct {
	ID        string        `json:"id"`
	ChatID    string        `json:"chat_id"`
	EventID   string        `json:"event_id"`
	Content   string        `json:"content"`
	Mentions  []string      `json:"mentions,omitempty"`
	EditedAt  string        `json:"edited_at,omitempty"`
	CreatedAt string        `json:"created_at"`
	Sender    *UserResponse `json:"sender,omitempty"`
}

type MemberResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	JoinedAt  string `json:"joined_at"`
	IsCreator bool   `json:"is_creator"`
}

type IngestSummaryResponse struct {
	CreatedCount int                    `json:"created_count"`
	FailedCount  int                    `json:"failed_count"`
	Successful   []domain.IngestSuccess `json:"successful"`
	Failed       []domain.IngestFailure `json:"failed"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Location:    e.Location,
		City:        e.City,
		Venue:       e.Venue,
		Address:     e.Address,
		Price:       e.Price,
		Image:       e.Image,
		BookingURL:  e.BookingURL,
		Origin:      string(e.Origin),
		IsPublic:    e.IsPublic,
		CreatedByID: e.CreatedByID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if e.Date != nil {
		resp.Date = e.Date.Format(time.RFC3339)
	}
	return resp
}

func ToChatResponse(c *domain.Chat) *ChatResponse {
	if c == nil {
		return nil
	}
	resp := &ChatResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		EventName: c.EventName,
	}
	if c.ExpiresAt != nil {
		resp.ExpiresAt = c.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}

func ToChatInfoResponse(info *domain.ChatInfo) ChatInfoResponse {
	return ChatInfoResponse{
		ChatResponse: *ToChatResponse(&info.Chat),
		MemberCount:  info.MemberCount,
		MessageCount: info.MessageCount,
	}
}

func ToCreatedEventResponse(created *domain.CreatedEvent) CreatedEventResponse {
	return CreatedEventResponse{
		Event: ToEventResponse(created.Event),
		Chat:  ToChatResponse(created.Chat),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		EventID:    b.EventID,
		UserID:     b.UserID,
		Qty:        b.Qty,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResultResponse(r *domain.BookingResult) BookingResultResponse {
	message := "Event booked successfully. You have been added to the event chat."
	if r.AlreadyBooked {
		message = "You have already booked this event"
	}
	return BookingResultResponse{
		Booking:       ToBookingResponse(r.Booking),
		AlreadyBooked: r.AlreadyBooked,
		AddedToChat:   r.AddedToChat,
		Message:       message,
	}
}

func ToMessageResponse(m *domain.Message) MessageResponse {
	resp := MessageResponse{
		ID:        m.ID,
		ChatID:    m.ChatID,
		EventID:   m.EventID,
		Content:   m.Content,
		Mentions:  m.Mentions,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.EditedAt != nil {
		resp.EditedAt = m.EditedAt.Format(time.RFC3339)
	}
	if m.Sender != nil {
		sender := ToUserResponse(m.Sender)
		sender.CreatedAt = ""
		resp.Sender = &sender
	}
	return resp
}

func ToMemberResponse(m *domain.ChatMemberInfo) MemberResponse {
	return MemberResponse{
		ID:        m.User.ID,
		Name:      m.User.Name,
		Email:     m.User.Email,
		AvatarURL: m.User.AvatarURL,
		JoinedAt:  m.JoinedAt.Format(time.RFC3339),
		IsCreator: m.IsCreator,
	}
}

func ToIngestSummaryResponse(s *domain.IngestSummary) IngestSummaryResponse {
	return IngestSummaryResponse{
		CreatedCount: s.CreatedCount(),
		FailedCount:  s.FailedCount(),
		Successful:   s.Successful,
		Failed:       s.Failed,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
