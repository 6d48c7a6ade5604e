package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/GauravTheBeginner/event-backend/internal/handler/dto"
	"github.com/GauravTheBeginner/event-backend/internal/middleware"
)

type EventSvc interface {
	Create(ctx context.Context, creatorID string, input domain.CreateEventInput) (*domain.CreatedEvent, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, actorID, eventID string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, actorID, eventID string) error
}

type BookingSvc interface {
	Book(ctx context.Context, userID, eventID string, qty int, totalPrice float64) (*domain.BookingResult, error)
	Cancel(ctx context.Context, userID, bookingID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type ChatSvc interface {
	GetByEventID(ctx context.Context, eventID string) (*domain.ChatInfo, error)
	Post(ctx context.Context, userID, eventID, content string, mentions []string) (*domain.Message, error)
	Messages(ctx context.Context, eventID string, page, limit int) ([]*domain.Message, error)
	Edit(ctx context.Context, userID, messageID, content string) (*domain.Message, error)
	Delete(ctx context.Context, userID, messageID string) (string, error)
	Members(ctx context.Context, eventID string) ([]*domain.ChatMemberInfo, error)
}

type IngestSvc interface {
	Ingest(ctx context.Context, actorID string, records []domain.RawEventRecord) *domain.IngestSummary
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	chatService    ChatSvc
	ingestService  IngestSvc
	userService    UserSvc
}

func NewHandler(
	eventService EventSvc,
	bookingService BookingSvc,
	chatService ChatSvc,
	ingestService IngestSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		chatService:    chatService,
		ingestService:  ingestService,
		userService:    userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected RFC3339",
			})
			return
		}
		date = &parsed
	}

	input := domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		Location:    req.Location,
		City:        req.City,
		Venue:       req.Venue,
		Address:     req.Address,
		Price:       req.Price,
		Image:       req.Image,
		BookingURL:  req.BookingURL,
		Origin:      domain.Origin(req.Origin),
		IsPublic:    req.IsPublic,
	}

	created, err := h.eventService.Create(c.Request.Context(), actorID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreatedEventResponse(created))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		City:        req.City,
		Venue:       req.Venue,
		Address:     req.Address,
		Price:       req.Price,
		Image:       req.Image,
		BookingURL:  req.BookingURL,
		IsPublic:    req.IsPublic,
	}
	if req.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected RFC3339",
			})
			return
		}
		input.Date = &parsed
	}

	event, err := h.eventService.Update(c.Request.Context(), actorID(c), eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), actorID(c), eventID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) BulkUploadEvents(c *ginext.Context) {
	var req dto.BulkUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	records := make([]domain.RawEventRecord, len(req.Records))
	for i, r := range req.Records {
		records[i] = r
	}

	summary := h.ingestService.Ingest(c.Request.Context(), actorID(c), records)

	c.JSON(http.StatusOK, dto.ToIngestSummaryResponse(summary))
}

// Bookings

func (h *Handler) BookEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.bookingService.Book(c.Request.Context(), actorID(c), eventID, req.Qty, req.TotalPrice)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyBooked {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToBookingResultResponse(result))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), actorID(c), bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), actorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Chat

func (h *Handler) GetChat(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	info, err := h.chatService.GetByEventID(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChatInfoResponse(info))
}

func (h *Handler) PostMessage(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	message, err := h.chatService.Post(c.Request.Context(), actorID(c), eventID, req.Content, req.Mentions)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}

func (h *Handler) ListMessages(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	messages, err := h.chatService.Messages(
		c.Request.Context(), eventID,
		queryInt(c, "page", 1), queryInt(c, "limit", 50),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToMessageResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) EditMessage(c *ginext.Context) {
	messageID := c.Param("id")
	if _, err := uuid.Parse(messageID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid message id"})
		return
	}

	var req dto.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	message, err := h.chatService.Edit(c.Request.Context(), actorID(c), messageID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(message))
}

func (h *Handler) DeleteMessage(c *ginext.Context) {
	messageID := c.Param("id")
	if _, err := uuid.Parse(messageID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid message id"})
		return
	}

	eventID, err := h.chatService.Delete(c.Request.Context(), actorID(c), messageID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"id": messageID, "event_id": eventID})
}

func (h *Handler) ListMembers(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	members, err := h.chatService.Members(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		AvatarURL:      req.AvatarURL,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrChatNotFound),
		errors.Is(err, domain.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrNotChatMember),
		errors.Is(err, domain.ErrNotMessageAuthor):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreBusy):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage temporarily unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func actorID(c *ginext.Context) string {
	return c.GetString(middleware.ActorKey)
}

func queryInt(c *ginext.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}
	return value
}
