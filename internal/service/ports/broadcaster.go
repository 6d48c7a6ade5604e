package ports

// Broadcaster fans a named event out to every observer currently
// subscribed to a room. Delivery is best-effort: no observers and partial
// delivery are both silent outcomes.
type Broadcaster interface {
	Emit(room, event string, payload any)
}
