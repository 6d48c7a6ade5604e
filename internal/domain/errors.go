package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrChatNotFound    = errors.New("chat not found for this event")
	ErrMessageNotFound = errors.New("message not found")
)

var (
	ErrNotOwner         = errors.New("only the event creator may modify this event")
	ErrNotChatMember    = errors.New("you are not a member of this chat")
	ErrNotMessageAuthor = errors.New("you can only modify your own messages")
)

var (
	ErrEmailTaken = errors.New("email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrStoreBusy marks storage failures expected to resolve on retry
// (serialization conflicts, deadlocks, statement timeouts). The bulk
// ingestion pipeline retries records failing with this error; everything
// else is permanent.
var ErrStoreBusy = errors.New("storage temporarily unavailable")
