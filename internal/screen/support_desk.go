package screen

import (
	"context"
	"sync"
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

// SupportDesk is the CLIENT support screen: raise tickets, review the
// ticket history, pick a related booking.
type SupportDesk struct {
	user       domain.User
	tickets    repository.TicketRepository
	bookings   repository.BookingRepository
	snapshots  *cache.TicketSnapshots
	dispatcher events.Dispatcher
	logger     *zap.Logger

	Tickets  []domain.Ticket
	Bookings []domain.Booking
	Banner   Banner
	Stale    bool
}

// SupportDeskDeps bundles collaborators for the support desk.
type SupportDeskDeps struct {
	Tickets    repository.TicketRepository
	Bookings   repository.BookingRepository
	Snapshots  *cache.TicketSnapshots
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewSupportDesk constructs the screen for the given session identity.
func NewSupportDesk(user domain.User, deps SupportDeskDeps) (*SupportDesk, error) {
	if err := access.Require(user.Role, access.OpListOwnTickets); err != nil {
		return nil, err
	}
	return &SupportDesk{
		user:       user,
		tickets:    deps.Tickets,
		bookings:   deps.Bookings,
		snapshots:  deps.Snapshots,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}, nil
}

// Refresh fetches the user's tickets and bookings concurrently and awaits
// both. The two writes land in disjoint fields, so no locking is needed
// beyond the join. Either failure raises the sync banner and keeps the
// prior collection for that field; a failed ticket fetch with nothing
// displayed additionally falls back to the last good snapshot, marked
// stale.
func (d *SupportDesk) Refresh(ctx context.Context) error {
	if err := access.RequireSelf(d.user, access.OpListOwnTickets, d.user.ID); err != nil {
		d.Banner = errorBanner(err.Error())
		return err
	}

	var (
		wg          sync.WaitGroup
		tickets     []domain.Ticket
		bookings    []domain.Booking
		ticketsErr  error
		bookingsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		tickets, ticketsErr = d.tickets.ListForUser(ctx, d.user.ID)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = d.bookings.ListForUser(ctx, d.user.ID)
	}()
	wg.Wait()

	if bookingsErr == nil {
		d.Bookings = bookings
	}
	if ticketsErr != nil {
		d.degradeToStale(ctx, cache.UserScope(d.user.ID))
		return ticketsErr
	}

	d.Tickets = tickets
	d.Stale = false
	if d.snapshots != nil {
		d.snapshots.Store(ctx, cache.UserScope(d.user.ID), tickets)
	}
	if bookingsErr != nil {
		// the ticket fetch landed, but the sync as a whole did not
		d.Banner = errorBanner("Unable to sync support stream.")
		return bookingsErr
	}
	d.Banner = Banner{}
	return nil
}

func (d *SupportDesk) degradeToStale(ctx context.Context, scope string) {
	d.Banner = errorBanner("Unable to sync support stream.")
	if len(d.Tickets) > 0 {
		return
	}
	if snapshot, ok := d.snapshots.Load(ctx, scope); ok {
		d.Tickets = snapshot
		d.Stale = true
	}
}

// Raise validates and submits a new ticket, then re-fetches the list so the
// view reflects the backend's authoritative state. The draft is always
// pinned to the session identity.
func (d *SupportDesk) Raise(ctx context.Context, draft domain.TicketDraft) error {
	if err := access.Require(d.user.Role, access.OpRaiseTicket); err != nil {
		d.Banner = errorBanner(err.Error())
		return err
	}
	draft.UserID = d.user.ID

	created, err := d.tickets.Create(ctx, draft)
	if err != nil {
		if apperr.IsKind(err, apperr.KindValidation) {
			d.Banner = errorBanner("Please complete both fields.")
		} else {
			d.Banner = errorBanner("Submission failed.")
		}
		return err
	}

	d.publish(ctx, events.Event{
		Type: events.EventTicketRaised,
		Payload: events.TicketRaisedPayload{
			TicketID:  created.TicketID,
			Subject:   created.Subject,
			Priority:  created.Priority,
			BookingID: created.BookingID,
		},
	})

	if err := d.Refresh(ctx); err != nil {
		return err
	}
	d.Banner = successBanner("Request logged successfully!")
	return nil
}

// History returns the ticket log newest first.
func (d *SupportDesk) History() []domain.Ticket {
	return viewmodel.ReverseChronological(d.Tickets)
}

// ActiveCount reports how many of the user's tickets still need attention.
func (d *SupportDesk) ActiveCount() int {
	return viewmodel.CountActive(d.Tickets)
}

func (d *SupportDesk) publish(ctx context.Context, event events.Event) {
	if d.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	event.Actor = events.Actor{UserID: d.user.ID, Role: d.user.Role}
	_ = d.dispatcher.Publish(ctx, event)
}
