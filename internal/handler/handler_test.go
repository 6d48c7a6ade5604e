package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/GauravTheBeginner/event-backend/internal/handler/dto"
	hmocks "github.com/GauravTheBeginner/event-backend/internal/handler/mocks"
	"github.com/GauravTheBeginner/event-backend/internal/middleware"
	"github.com/GauravTheBeginner/event-backend/internal/router"
)

type fixture struct {
	eventSvc   *hmocks.MockEventSvc
	bookingSvc *hmocks.MockBookingSvc
	chatSvc    *hmocks.MockChatSvc
	ingestSvc  *hmocks.MockIngestSvc
	userSvc    *hmocks.MockUserSvc
	router     http.Handler
}

func setupRouter(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		eventSvc:   hmocks.NewMockEventSvc(t),
		bookingSvc: hmocks.NewMockBookingSvc(t),
		chatSvc:    hmocks.NewMockChatSvc(t),
		ingestSvc:  hmocks.NewMockIngestSvc(t),
		userSvc:    hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(f.eventSvc, f.bookingSvc, f.chatSvc, f.ingestSvc, f.userSvc)
	f.router = router.InitRouter(
		"test",
		h,
		middleware.Identity(),
		func(c *ginext.Context) {},
	)

	return f
}

func doJSON(t *testing.T, r http.Handler, method, path, actor string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()

	date := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	created := &domain.CreatedEvent{
		Event: &domain.Event{
			ID:          uuid.New().String(),
			Name:        "Concert",
			Date:        &date,
			Origin:      domain.OriginInteractive,
			IsPublic:    true,
			CreatedByID: actor,
			CreatedAt:   time.Now().UTC(),
		},
		Chat: &domain.Chat{ID: uuid.New().String()},
	}

	f.eventSvc.EXPECT().Create(mock.Anything, actor, mock.Anything).Return(created, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/events", actor, dto.CreateEventRequest{
		Name: "Concert",
		Date: date.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreatedEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Event.Name)
	require.NotNil(t, resp.Chat)
	assert.Equal(t, created.Chat.ID, resp.Chat.ID)
}

func TestHandler_CreateEvent_MissingActor(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/events", "", dto.CreateEventRequest{Name: "Concert"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/events", uuid.New().String(), dto.CreateEventRequest{
		Name: "Concert",
		Date: "next friday",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	f := setupRouter(t)
	id := uuid.New().String()

	f.eventSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, f.router, http.MethodGet, "/api/events/"+id, "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/api/events/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Filters(t *testing.T) {
	f := setupRouter(t)

	f.eventSvc.EXPECT().List(mock.Anything, domain.EventFilter{
		Category: "music",
		City:     "Berlin",
		Page:     2,
		Limit:    10,
	}).Return([]*domain.Event{{ID: "e1", Name: "Concert"}}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/events?category=music&city=Berlin&page=2&limit=10", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Concert", resp[0].Name)
}

func TestHandler_DeleteEvent_NotOwner(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	id := uuid.New().String()

	f.eventSvc.EXPECT().Delete(mock.Anything, actor, id).Return(domain.ErrNotOwner)

	w := doJSON(t, f.router, http.MethodDelete, "/api/events/"+id, actor, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateEvent_StoreBusy(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	id := uuid.New().String()

	f.eventSvc.EXPECT().Update(mock.Anything, actor, id, mock.Anything).
		Return(nil, fmt.Errorf("update event: %w", domain.ErrStoreBusy))

	name := "Renamed"
	w := doJSON(t, f.router, http.MethodPut, "/api/events/"+id, actor, dto.UpdateEventRequest{Name: &name})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_BulkUpload(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()

	summary := &domain.IngestSummary{
		Successful: []domain.IngestSuccess{{Row: 2, Name: "Concert", EventID: "e1"}},
		Failed:     []domain.IngestFailure{{Row: 3, Name: "Unknown", Error: "invalid date: nope"}},
	}
	f.ingestSvc.EXPECT().Ingest(mock.Anything, actor, mock.Anything).Return(summary)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/bulk", actor, dto.BulkUploadRequest{
		Records: []map[string]string{
			{"name": "Concert"},
			{"date": "nope"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.IngestSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, 1, resp.FailedCount)
}

func TestHandler_BulkUpload_EmptyRecords(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/bulk", uuid.New().String(), dto.BulkUploadRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_BookEvent_Created(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	eventID := uuid.New().String()

	result := &domain.BookingResult{
		Booking:     &domain.Booking{ID: uuid.New().String(), EventID: eventID, UserID: actor, Qty: 1},
		AddedToChat: true,
	}
	f.bookingSvc.EXPECT().Book(mock.Anything, actor, eventID, 1, 25.0).Return(result, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/"+eventID+"/book", actor, dto.BookRequest{
		Qty:        1,
		TotalPrice: 25,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.AlreadyBooked)
	assert.True(t, resp.AddedToChat)
}

func TestHandler_BookEvent_Duplicate(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	eventID := uuid.New().String()

	result := &domain.BookingResult{
		Booking:       &domain.Booking{ID: uuid.New().String(), EventID: eventID, UserID: actor},
		AlreadyBooked: true,
	}
	f.bookingSvc.EXPECT().Book(mock.Anything, actor, eventID, 1, 0.0).Return(result, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/"+eventID+"/book", actor, dto.BookRequest{Qty: 1})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.AlreadyBooked)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodDelete, "/api/bookings/nope", uuid.New().String(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Chat ---

func TestHandler_PostMessage_NotMember(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	eventID := uuid.New().String()

	f.chatSvc.EXPECT().Post(mock.Anything, actor, eventID, "hi", []string(nil)).
		Return(nil, domain.ErrNotChatMember)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/"+eventID+"/chat/messages", actor, dto.PostMessageRequest{
		Content: "hi",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_PostMessage_Created(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	eventID := uuid.New().String()

	message := &domain.Message{
		ID:       uuid.New().String(),
		EventID:  eventID,
		SenderID: actor,
		Content:  "hi",
		Sender:   &domain.User{ID: actor, Name: "Alice"},
	}
	f.chatSvc.EXPECT().Post(mock.Anything, actor, eventID, "hi", []string(nil)).Return(message, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/events/"+eventID+"/chat/messages", actor, dto.PostMessageRequest{
		Content: "hi",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hi", resp.Content)
	require.NotNil(t, resp.Sender)
	assert.Equal(t, "Alice", resp.Sender.Name)
}

func TestHandler_EditMessage_NotAuthor(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	messageID := uuid.New().String()

	f.chatSvc.EXPECT().Edit(mock.Anything, actor, messageID, "edited").
		Return(nil, domain.ErrNotMessageAuthor)

	w := doJSON(t, f.router, http.MethodPut, "/api/messages/"+messageID, actor, dto.EditMessageRequest{
		Content: "edited",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteMessage(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	messageID := uuid.New().String()
	eventID := uuid.New().String()

	f.chatSvc.EXPECT().Delete(mock.Anything, actor, messageID).Return(eventID, nil)

	w := doJSON(t, f.router, http.MethodDelete, "/api/messages/"+messageID, actor, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), eventID)
}

func TestHandler_GetChat_NotFound(t *testing.T) {
	f := setupRouter(t)
	actor := uuid.New().String()
	eventID := uuid.New().String()

	f.chatSvc.EXPECT().GetByEventID(mock.Anything, eventID).Return(nil, domain.ErrChatNotFound)

	w := doJSON(t, f.router, http.MethodGet, "/api/events/"+eventID+"/chat", actor, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	f := setupRouter(t)

	f.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, f.router, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "taken@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_Success(t *testing.T) {
	f := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Name: "Alice", Email: "alice@example.com"}
	f.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Health(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
