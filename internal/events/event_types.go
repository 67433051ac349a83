package events

import (
	"time"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketRaised        EventType = "ticket_raised"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventUserBlockToggled    EventType = "user_block_toggled"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a client-side activity record emitted after a
// successful mutation.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// TicketRaisedPayload payload.
type TicketRaisedPayload struct {
	TicketID  int64                 `json:"ticket_id"`
	Subject   string                `json:"subject"`
	Priority  domain.TicketPriority `json:"priority"`
	BookingID *int64                `json:"booking_id,omitempty"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  int64               `json:"ticket_id"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// UserBlockToggledPayload payload.
type UserBlockToggledPayload struct {
	UserID  int64 `json:"user_id"`
	Blocked bool  `json:"blocked"`
}
