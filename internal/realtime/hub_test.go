package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient() *Client {
	return &Client{send: make(chan []byte, sendBufferSize)}
}

func TestHub_EmitReachesRoomMembers(t *testing.T) {
	hub := NewHub(newTestLogger(t))

	member := newTestClient()
	outsider := newTestClient()

	hub.Join("e1", member)
	hub.Join("e2", outsider)

	hub.Emit("e1", "new_message", map[string]string{"id": "m1"})

	require.Len(t, member.send, 1)
	assert.Empty(t, outsider.send)

	var env envelope
	require.NoError(t, json.Unmarshal(<-member.send, &env))
	assert.Equal(t, "new_message", env.Event)
}

func TestHub_EmitToEmptyRoomIsNoop(t *testing.T) {
	hub := NewHub(newTestLogger(t))

	hub.Emit("nobody-here", "new_message", "payload")
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	hub := NewHub(newTestLogger(t))

	c := newTestClient()
	hub.Join("e1", c)
	hub.Leave("e1", c)

	hub.Emit("e1", "new_message", "payload")

	assert.Empty(t, c.send)
}

func TestHub_SlowConsumerDropped(t *testing.T) {
	hub := NewHub(newTestLogger(t))

	slow := &Client{send: make(chan []byte, 1)}
	healthy := newTestClient()

	hub.Join("e1", slow)
	hub.Join("e2", slow)
	hub.Join("e1", healthy)

	// Fill the slow client's buffer, then overflow it.
	hub.Emit("e1", "new_message", "first")
	hub.Emit("e1", "new_message", "second")

	assert.Len(t, healthy.send, 2)

	// The slow client is gone from every room, so a later emit to its
	// other room must not panic on its closed channel.
	hub.Emit("e2", "new_message", "third")
}

func TestHub_DetachRemovesFromAllRooms(t *testing.T) {
	hub := NewHub(newTestLogger(t))

	c := newTestClient()
	hub.Join("e1", c)
	hub.Join("e2", c)

	hub.Detach(c)

	hub.Emit("e1", "new_message", "payload")
	hub.Emit("e2", "new_message", "payload")

	assert.Empty(t, c.send)
}
