package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/GauravTheBeginner/event-backend/internal/service/ports/mocks"
)

type chatFixture struct {
	chatRepo    *mocks.MockChatRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	broadcaster *mocks.MockBroadcaster
	svc         *ChatService
}

func newChatFixture(t *testing.T) *chatFixture {
	f := &chatFixture{
		chatRepo:    mocks.NewMockChatRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		broadcaster: mocks.NewMockBroadcaster(t),
	}
	f.svc = NewChatService(f.chatRepo, f.eventRepo, f.userRepo, f.broadcaster, newTestLogger(t))
	return f
}

func TestChatService_Post_BroadcastsToRoom(t *testing.T) {
	f := newChatFixture(t)

	sender := &domain.User{ID: "u1", Name: "Alice"}

	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(&domain.Chat{ID: "c1", EventID: "e1"}, nil)
	f.chatRepo.EXPECT().IsMember(mock.Anything, "c1", "u1").Return(true, nil)
	f.chatRepo.EXPECT().CreateMessage(mock.Anything, mock.Anything).Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(sender, nil)
	f.broadcaster.EXPECT().Emit("e1", "new_message", mock.Anything).Return()

	message, err := f.svc.Post(context.Background(), "u1", "e1", "hello", []string{"u2"})

	require.NoError(t, err)
	assert.Equal(t, "c1", message.ChatID)
	assert.Equal(t, "hello", message.Content)
	assert.Equal(t, sender, message.Sender)
	assert.NotEmpty(t, message.ID)
}

func TestChatService_Post_NonMemberRejected(t *testing.T) {
	f := newChatFixture(t)

	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(&domain.Chat{ID: "c1"}, nil)
	f.chatRepo.EXPECT().IsMember(mock.Anything, "c1", "outsider").Return(false, nil)

	_, err := f.svc.Post(context.Background(), "outsider", "e1", "hello", nil)

	assert.ErrorIs(t, err, domain.ErrNotChatMember)
	f.broadcaster.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatService_Post_RequiresContent(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.svc.Post(context.Background(), "u1", "e1", "", nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChatService_Messages_ChronologicalOrder(t *testing.T) {
	f := newChatFixture(t)

	// Storage returns the page newest-first.
	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(&domain.Chat{ID: "c1"}, nil)
	f.chatRepo.EXPECT().ListMessages(mock.Anything, "c1", 50, 0).Return([]*domain.Message{
		{ID: "m3"}, {ID: "m2"}, {ID: "m1"},
	}, nil)

	messages, err := f.svc.Messages(context.Background(), "e1", 1, 0)

	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
	assert.Equal(t, "m3", messages[2].ID)
}

func TestChatService_Messages_SecondPageOffset(t *testing.T) {
	f := newChatFixture(t)

	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(&domain.Chat{ID: "c1"}, nil)
	f.chatRepo.EXPECT().ListMessages(mock.Anything, "c1", 20, 20).Return([]*domain.Message{}, nil)

	_, err := f.svc.Messages(context.Background(), "e1", 2, 20)

	require.NoError(t, err)
}

func TestChatService_Edit_OnlyAuthor(t *testing.T) {
	f := newChatFixture(t)

	f.chatRepo.EXPECT().GetMessageByID(mock.Anything, "m1").
		Return(&domain.Message{ID: "m1", SenderID: "author", EventID: "e1"}, nil)

	_, err := f.svc.Edit(context.Background(), "intruder", "m1", "edited")

	assert.ErrorIs(t, err, domain.ErrNotMessageAuthor)
}

func TestChatService_Edit_BroadcastsUpdate(t *testing.T) {
	f := newChatFixture(t)

	updated := &domain.Message{ID: "m1", SenderID: "u1", EventID: "e1", Content: "edited"}

	f.chatRepo.EXPECT().GetMessageByID(mock.Anything, "m1").
		Return(&domain.Message{ID: "m1", SenderID: "u1", EventID: "e1"}, nil)
	f.chatRepo.EXPECT().UpdateMessage(mock.Anything, "m1", "edited").Return(updated, nil)
	f.broadcaster.EXPECT().Emit("e1", "message_updated", updated).Return()

	got, err := f.svc.Edit(context.Background(), "u1", "m1", "edited")

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestChatService_Delete_SoftDeletesAndBroadcasts(t *testing.T) {
	f := newChatFixture(t)

	f.chatRepo.EXPECT().GetMessageByID(mock.Anything, "m1").
		Return(&domain.Message{ID: "m1", SenderID: "u1", EventID: "e1"}, nil)
	f.chatRepo.EXPECT().SoftDeleteMessage(mock.Anything, "m1").Return(nil)
	f.broadcaster.EXPECT().Emit("e1", "message_deleted", map[string]string{"id": "m1"}).Return()

	eventID, err := f.svc.Delete(context.Background(), "u1", "m1")

	require.NoError(t, err)
	assert.Equal(t, "e1", eventID)
}

func TestChatService_Members_AnnotatesCreator(t *testing.T) {
	f := newChatFixture(t)

	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatedByID: "u1"}, nil)
	f.chatRepo.EXPECT().GetByEventID(mock.Anything, "e1").Return(&domain.Chat{ID: "c1"}, nil)
	f.chatRepo.EXPECT().ListMembers(mock.Anything, "c1").Return([]*domain.ChatMemberInfo{
		{User: domain.User{ID: "u1"}},
		{User: domain.User{ID: "u2"}},
	}, nil)

	members, err := f.svc.Members(context.Background(), "e1")

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.True(t, members[0].IsCreator)
	assert.False(t, members[1].IsCreator)
}

func TestChatService_CleanupExpired(t *testing.T) {
	f := newChatFixture(t)

	expired := []*domain.Chat{
		{ID: "c1", EventID: "e1"},
		{ID: "c2", EventID: "e2"},
	}

	f.chatRepo.EXPECT().FindExpired(mock.Anything, mock.Anything).Return(expired, nil)
	f.chatRepo.EXPECT().DeleteByIDs(mock.Anything, []string{"c1", "c2"}).Return(int64(2), nil)

	deleted, err := f.svc.CleanupExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expired, deleted)
}

func TestChatService_CleanupExpired_NothingToDo(t *testing.T) {
	f := newChatFixture(t)

	f.chatRepo.EXPECT().FindExpired(mock.Anything, mock.Anything).Return(nil, nil)

	deleted, err := f.svc.CleanupExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, deleted)
	f.chatRepo.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
}
