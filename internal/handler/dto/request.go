package dto

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	City        string `json:"city"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	BookingURL  string `json:"booking_url"`
	Origin      string `json:"origin" binding:"omitempty,oneof=interactive-user bulk-file automated-crawl"`
	IsPublic    *bool  `json:"is_public"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	City        *string `json:"city"`
	Venue       *string `json:"venue"`
	Address     *string `json:"address"`
	Price       *string `json:"price"`
	Image       *string `json:"image"`
	BookingURL  *string `json:"booking_url"`
	IsPublic    *bool   `json:"is_public"`
}

type BookRequest struct {
	Qty        int     `json:"qty" binding:"omitempty,gt=0"`
	TotalPrice float64 `json:"total_price" binding:"omitempty,gte=0"`
}

type PostMessageRequest struct {
	Content  string   `json:"content" binding:"required"`
	Mentions []string `json:"mentions"`
}

type EditMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// BulkUploadRequest carries pre-parsed records: reading and parsing the
// source file happens upstream.
type BulkUploadRequest struct {
	Records []map[string]string `json:"records" binding:"required,min=1"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	AvatarURL      string `json:"avatar_url"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
