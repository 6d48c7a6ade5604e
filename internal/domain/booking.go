package domain

import "time"

type Booking struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	Qty        int       `json:"qty"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingResult reports the outcome of a book operation. A duplicate
// booking attempt is not an error: AlreadyBooked is set and the existing
// booking is returned instead.
type BookingResult struct {
	Booking       *Booking `json:"booking"`
	AlreadyBooked bool     `json:"already_booked"`
	AddedToChat   bool     `json:"added_to_chat"`
}
