package screen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/cache"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/events"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

func ptr[T any](v T) *T { return &v }

func clientUser() domain.User {
	return domain.User{ID: 3, FirstName: "Mara", Email: "mara@example.com", Role: domain.RoleClient, Active: true}
}

func clientTickets() []domain.Ticket {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Ticket{
		{TicketID: 97, UserID: ptr(int64(3)), Subject: "Refund requested for booking", Status: domain.TicketStatusOpen, CreatedAt: base},
		{TicketID: 98, UserID: ptr(int64(3)), Subject: "Seat change", Status: domain.TicketStatusInProgress, CreatedAt: base.Add(time.Hour)},
	}
}

func newDesk(t *testing.T, tickets *fakeTicketRepo, bookings *fakeBookingRepo, snapshots *cache.TicketSnapshots) *SupportDesk {
	t.Helper()
	desk, err := NewSupportDesk(clientUser(), SupportDeskDeps{
		Tickets:   tickets,
		Bookings:  bookings,
		Snapshots: snapshots,
		Logger:    zap.NewNop(),
	})
	require.NoError(t, err)
	return desk
}

func TestNewSupportDeskRejectsNonClients(t *testing.T) {
	_, err := NewSupportDesk(domain.User{ID: 2, Role: domain.RoleAgent}, SupportDeskDeps{})
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}

func TestSupportDeskRefreshFillsDisjointFields(t *testing.T) {
	tickets := &fakeTicketRepo{tickets: clientTickets()}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{{BookingID: 1, UserID: 3, PackageTitle: "Alpine Escape"}}}
	desk := newDesk(t, tickets, bookings, nil)

	require.NoError(t, desk.Refresh(context.Background()))

	assert.Len(t, desk.Tickets, 2)
	assert.Len(t, desk.Bookings, 1)
	assert.True(t, desk.Banner.Empty())
	assert.False(t, desk.Stale)
	assert.Equal(t, 1, tickets.listForUserCalls)
	assert.Equal(t, 1, bookings.calls)
}

func TestSupportDeskRefreshFailureKeepsPriorTickets(t *testing.T) {
	tickets := &fakeTicketRepo{tickets: clientTickets()}
	bookings := &fakeBookingRepo{}
	desk := newDesk(t, tickets, bookings, nil)
	require.NoError(t, desk.Refresh(context.Background()))

	tickets.listErr = apperr.NewFetch("failed to list tickets", nil)
	err := desk.Refresh(context.Background())
	require.Error(t, err)

	// the last good collection stays visible under the error banner
	assert.Len(t, desk.Tickets, 2)
	assert.Equal(t, "Unable to sync support stream.", desk.Banner.Text)
	assert.Equal(t, BannerError, desk.Banner.Level)
}

func TestSupportDeskRefreshFailureFallsBackToSnapshot(t *testing.T) {
	snapshots := cache.NewTicketSnapshots(newMemoryKV(), time.Hour, zap.NewNop())
	snapshots.Store(context.Background(), cache.UserScope(3), clientTickets())

	tickets := &fakeTicketRepo{listErr: apperr.NewFetch("failed to list tickets", nil)}
	desk := newDesk(t, tickets, &fakeBookingRepo{}, snapshots)

	err := desk.Refresh(context.Background())
	require.Error(t, err)

	assert.Len(t, desk.Tickets, 2)
	assert.True(t, desk.Stale)
	assert.Equal(t, "Unable to sync support stream.", desk.Banner.Text)
}

func TestSupportDeskBookingFailureRaisesSyncBanner(t *testing.T) {
	tickets := &fakeTicketRepo{tickets: clientTickets()}
	bookings := &fakeBookingRepo{err: apperr.NewFetch("failed to list bookings", nil)}
	desk := newDesk(t, tickets, bookings, nil)
	desk.Bookings = []domain.Booking{{BookingID: 9}}

	err := desk.Refresh(context.Background())
	require.Error(t, err)

	// the ticket side of the join still lands, the prior bookings stay,
	// and the failure is not silent
	assert.Len(t, desk.Tickets, 2)
	assert.False(t, desk.Stale)
	assert.Len(t, desk.Bookings, 1)
	assert.Equal(t, "Unable to sync support stream.", desk.Banner.Text)
	assert.Equal(t, BannerError, desk.Banner.Level)
}

func TestSupportDeskRaiseRefetchesOnce(t *testing.T) {
	tickets := &fakeTicketRepo{tickets: clientTickets()}
	desk := newDesk(t, tickets, &fakeBookingRepo{}, nil)
	require.NoError(t, desk.Refresh(context.Background()))

	var raised []events.Event
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	dispatcher.Subscribe(events.EventTicketRaised, func(_ context.Context, e events.Event) error {
		raised = append(raised, e)
		return nil
	})
	desk.dispatcher = dispatcher

	err := desk.Raise(context.Background(), domain.TicketDraft{
		Subject:     "Lost luggage",
		Description: "Bag never arrived",
	})
	require.NoError(t, err)

	// list state comes from the refetch, never a local patch
	assert.Equal(t, 2, tickets.listForUserCalls)
	assert.Len(t, desk.Tickets, 3)
	assert.Equal(t, "Request logged successfully!", desk.Banner.Text)
	assert.Equal(t, BannerSuccess, desk.Banner.Level)

	require.Len(t, raised, 1)
	payload, ok := raised[0].Payload.(events.TicketRaisedPayload)
	require.True(t, ok)
	assert.Equal(t, "Lost luggage", payload.Subject)
}

func TestSupportDeskRaisePinsDraftToSession(t *testing.T) {
	tickets := &fakeTicketRepo{}
	desk := newDesk(t, tickets, &fakeBookingRepo{}, nil)

	err := desk.Raise(context.Background(), domain.TicketDraft{
		UserID:      999, // ignored: the session identity wins
		Subject:     "s",
		Description: "d",
	})
	require.NoError(t, err)
	require.Len(t, tickets.tickets, 1)
	require.NotNil(t, tickets.tickets[0].UserID)
	assert.Equal(t, int64(3), *tickets.tickets[0].UserID)
}

func TestSupportDeskRaiseValidationBanner(t *testing.T) {
	tickets := &fakeTicketRepo{}
	desk := newDesk(t, tickets, &fakeBookingRepo{}, nil)

	err := desk.Raise(context.Background(), domain.TicketDraft{Subject: "", Description: ""})
	require.Error(t, err)
	assert.Equal(t, "Please complete both fields.", desk.Banner.Text)
	assert.Equal(t, 0, tickets.listForUserCalls, "no refetch after a rejected draft")
}

func TestSupportDeskRaiseSubmissionBanner(t *testing.T) {
	tickets := &fakeTicketRepo{createErr: apperr.NewUpdate("failed to raise ticket", nil)}
	desk := newDesk(t, tickets, &fakeBookingRepo{}, nil)

	err := desk.Raise(context.Background(), domain.TicketDraft{Subject: "s", Description: "d"})
	require.Error(t, err)
	assert.Equal(t, "Submission failed.", desk.Banner.Text)
}

func TestSupportDeskHistoryNewestFirst(t *testing.T) {
	tickets := &fakeTicketRepo{tickets: clientTickets()}
	desk := newDesk(t, tickets, &fakeBookingRepo{}, nil)
	require.NoError(t, desk.Refresh(context.Background()))

	history := desk.History()
	require.Len(t, history, 2)
	assert.Equal(t, int64(98), history[0].TicketID)
	assert.Equal(t, int64(97), history[1].TicketID)
	assert.Equal(t, 2, desk.ActiveCount())
}
