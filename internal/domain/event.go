package domain

import "time"

type Origin string

const (
	OriginInteractive Origin = "interactive-user"
	OriginBulkFile    Origin = "bulk-file"
	OriginCrawl       Origin = "automated-crawl"
)

// Bulk reports whether events of this provenance are machine-ingested.
// Such events never get a chat room provisioned.
func (o Origin) Bulk() bool {
	return o == OriginBulkFile || o == OriginCrawl
}

type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	City        string     `json:"city"`
	Venue       string     `json:"venue"`
	Address     string     `json:"address"`
	Price       string     `json:"price"`
	Image       string     `json:"image"`
	BookingURL  string     `json:"booking_url"`
	Origin      Origin     `json:"origin"`
	IsPublic    bool       `json:"is_public"`
	CreatedByID string     `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateEventInput struct {
	Name        string
	Description string
	Category    string
	Date        *time.Time
	Location    string
	City        string
	Venue       string
	Address     string
	Price       string
	Image       string
	BookingURL  string
	Origin      Origin
	IsPublic    *bool
}

// UpdateEventInput carries a partial update; nil fields stay untouched.
type UpdateEventInput struct {
	Name        *string
	Description *string
	Category    *string
	Date        *time.Time
	Location    *string
	City        *string
	Venue       *string
	Address     *string
	Price       *string
	Image       *string
	BookingURL  *string
	IsPublic    *bool
}

// CreatedEvent is the result of event creation. Chat is nil for
// bulk-origin events.
type CreatedEvent struct {
	Event *Event `json:"event"`
	Chat  *Chat  `json:"chat,omitempty"`
}

type EventFilter struct {
	Category string
	City     string
	Search   string
	Page     int
	Limit    int
}
