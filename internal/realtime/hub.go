package realtime

import (
	"encoding/json"
	"sync"

	"github.com/wb-go/wbf/logger"
)

// Hub keeps the room → subscriber registry for real-time fan-out. The
// registry is in-memory and per-process: a reconnecting client has to
// rejoin its rooms, and nothing here is authoritative state.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	log   logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		log:   log,
	}
}

func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[room]
	if !ok {
		clients = make(map[*Client]struct{})
		h.rooms[room] = clients
	}
	clients[c] = struct{}{}

	h.log.Debug("client joined room", logger.String("room", room))
}

func (h *Hub) Leave(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(room, c)
}

// Emit pushes a named event to every subscriber of the room. Delivery is
// best-effort: an empty room is silent, and a subscriber whose send
// buffer is full is dropped rather than blocking the caller, whose
// mutation has already been committed.
func (h *Hub) Emit(room, event string, payload any) {
	data, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		h.log.Error("failed to marshal fan-out payload",
			logger.String("event", event),
			logger.String("error", err.Error()),
		)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[room] {
		select {
		case c.send <- data:
		default:
			// Slow consumer: drop it everywhere so no later emit can hit
			// its closed channel.
			h.detachLocked(c)
			c.closeSend()
		}
	}
}

// Detach drops the client from every room, typically on disconnect.
func (h *Hub) Detach(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	for room := range h.rooms {
		h.removeLocked(room, c)
	}
}

func (h *Hub) removeLocked(room string, c *Client) {
	clients, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.rooms, room)
	}
}

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
