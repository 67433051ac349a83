package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/access"
	"github.com/odyssey-travel/odyssey-console/internal/cache"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/events"
	"github.com/odyssey-travel/odyssey-console/internal/repository"
	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// AdminStream is the ADMIN support screen: the full ticket stream with
// search, status filtering, and status updates.
type AdminStream struct {
	admin      domain.User
	tickets    repository.TicketRepository
	snapshots  *cache.TicketSnapshots
	dispatcher events.Dispatcher
	logger     *zap.Logger

	Tickets      []domain.Ticket
	SearchTerm   string
	StatusFilter string
	Banner       Banner
	Stale        bool
}

// AdminStreamDeps bundles collaborators for the admin stream.
type AdminStreamDeps struct {
	Tickets    repository.TicketRepository
	Snapshots  *cache.TicketSnapshots
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAdminStream constructs the screen for the given session identity.
func NewAdminStream(admin domain.User, deps AdminStreamDeps) (*AdminStream, error) {
	if err := access.Require(admin.Role, access.OpListAllTickets); err != nil {
		return nil, err
	}
	return &AdminStream{
		admin:        admin,
		tickets:      deps.Tickets,
		snapshots:    deps.Snapshots,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
		StatusFilter: viewmodel.StatusAll,
	}, nil
}

// Refresh re-fetches the full stream. A failure keeps the prior collection;
// with nothing displayed, the last good snapshot is shown stale.
func (s *AdminStream) Refresh(ctx context.Context) error {
	if err := access.Require(s.admin.Role, access.OpListAllTickets); err != nil {
		s.Banner = errorBanner(err.Error())
		return err
	}

	tickets, err := s.tickets.ListAll(ctx)
	if err != nil {
		s.Banner = errorBanner("Unable to load support stream.")
		if len(s.Tickets) == 0 {
			if snapshot, ok := s.snapshots.Load(ctx, cache.AdminScope()); ok {
				s.Tickets = snapshot
				s.Stale = true
			}
		}
		return err
	}

	s.Tickets = tickets
	s.Stale = false
	s.Banner = Banner{}
	if s.snapshots != nil {
		s.snapshots.Store(ctx, cache.AdminScope(), tickets)
	}
	return nil
}

// UpdateStatus applies a status transition and then re-fetches the stream.
func (s *AdminStream) UpdateStatus(ctx context.Context, ticketID int64, status domain.TicketStatus) error {
	if err := access.Require(s.admin.Role, access.OpUpdateTicketStatus); err != nil {
		s.Banner = errorBanner(err.Error())
		return err
	}

	updated, err := s.tickets.UpdateStatus(ctx, ticketID, status)
	if err != nil {
		s.Banner = errorBanner("Failed to update status.")
		return err
	}

	s.publish(ctx, events.Event{
		Type: events.EventTicketStatusChanged,
		Payload: events.TicketStatusChangedPayload{
			TicketID:  updated.TicketID,
			NewStatus: updated.Status,
		},
	})

	if err := s.Refresh(ctx); err != nil {
		return err
	}
	s.Banner = successBanner(fmt.Sprintf("Ticket #%d updated to %s", ticketID, status))
	return nil
}

// SetSearch narrows the visible stream by a free-text term.
func (s *AdminStream) SetSearch(term string) {
	s.SearchTerm = term
}

// SetStatusFilter narrows the visible stream to one status, or ALL.
func (s *AdminStream) SetStatusFilter(status string) error {
	if status != viewmodel.StatusAll && !domain.TicketStatus(status).Valid() {
		return apperr.NewValidation("unknown status filter", map[string]any{"status": status})
	}
	s.StatusFilter = status
	return nil
}

// Visible returns the stream after search and status filtering.
func (s *AdminStream) Visible() []domain.Ticket {
	return viewmodel.FilterTickets(s.Tickets, viewmodel.TicketQuery{
		SearchTerm: s.SearchTerm,
		Status:     s.StatusFilter,
	})
}

// ActiveCount reports active tickets across the whole stream, regardless
// of the current filters.
func (s *AdminStream) ActiveCount() int {
	return viewmodel.CountActive(s.Tickets)
}

func (s *AdminStream) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	event.Actor = events.Actor{UserID: s.admin.ID, Role: s.admin.Role}
	_ = s.dispatcher.Publish(ctx, event)
}
