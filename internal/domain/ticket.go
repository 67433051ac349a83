package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// TicketStatuses lists every valid status in display order.
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

// Valid reports whether the status is one of the enumerated values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Active reports whether the ticket still needs attention.
func (s TicketStatus) Active() bool {
	return s != TicketStatusResolved && s != TicketStatusClosed
}

// TicketPriority enumerates requester-declared urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// TicketPriorities lists every valid priority in ascending urgency.
var TicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
}

// Valid reports whether the priority is one of the enumerated values.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Ticket is one support request as served by the backend. The backend owns
// identity, timestamps, and status legality; the client never invents any of
// them. PackageTitle is display-only context joined from the related booking.
type Ticket struct {
	TicketID      int64          `json:"ticketId"`
	UserID        *int64         `json:"userId"`
	BookingID     *int64         `json:"bookingId"`
	Subject       string         `json:"subject"`
	Description   string         `json:"description"`
	Priority      TicketPriority `json:"priority"`
	Status        TicketStatus   `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	LastUpdatedAt time.Time      `json:"lastUpdatedAt"`
	PackageTitle  *string        `json:"packageTitle"`
}

// TicketDraft is the client-side creation payload.
type TicketDraft struct {
	UserID      int64          `json:"userId"`
	BookingID   *int64         `json:"bookingId,omitempty"`
	Subject     string         `json:"subject"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
}
