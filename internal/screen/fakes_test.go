package screen

import (
	"context"
	"errors"
	"time"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// fakeTicketRepo is an in-memory stand-in with per-method call counters, so
// tests can assert the mutate-then-refetch choreography.
type fakeTicketRepo struct {
	tickets []domain.Ticket

	listErr   error
	createErr error
	updateErr error

	listForUserCalls  int
	listForAgentCalls int
	listAllCalls      int
	createCalls       int
	updateCalls       int

	nextID int64
}

func (f *fakeTicketRepo) ListForUser(_ context.Context, userID int64) ([]domain.Ticket, error) {
	f.listForUserCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Ticket, 0, len(f.tickets))
	for _, t := range f.tickets {
		if t.UserID != nil && *t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListForAgent(_ context.Context, _ int64) ([]domain.Ticket, error) {
	f.listForAgentCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Ticket{}, f.tickets...), nil
}

func (f *fakeTicketRepo) ListAll(_ context.Context) ([]domain.Ticket, error) {
	f.listAllCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Ticket{}, f.tickets...), nil
}

func (f *fakeTicketRepo) Create(_ context.Context, draft domain.TicketDraft) (*domain.Ticket, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if draft.Subject == "" || draft.Description == "" {
		return nil, apperr.NewValidation("subject and description are required", nil)
	}
	if f.nextID == 0 {
		f.nextID = 100
	}
	priority := draft.Priority
	if priority == "" {
		priority = domain.TicketPriorityLow
	}
	created := domain.Ticket{
		TicketID:    f.nextID,
		UserID:      &draft.UserID,
		BookingID:   draft.BookingID,
		Subject:     draft.Subject,
		Description: draft.Description,
		Priority:    priority,
		Status:      domain.TicketStatusOpen,
	}
	f.nextID++
	f.tickets = append(f.tickets, created)
	return &created, nil
}

func (f *fakeTicketRepo) UpdateStatus(_ context.Context, ticketID int64, status domain.TicketStatus) (*domain.Ticket, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.tickets {
		if f.tickets[i].TicketID == ticketID {
			f.tickets[i].Status = status
			t := f.tickets[i]
			return &t, nil
		}
	}
	return nil, errors.New("no such ticket")
}

type fakeBookingRepo struct {
	bookings []domain.Booking
	err      error
	calls    int
}

func (f *fakeBookingRepo) ListForUser(_ context.Context, _ int64) ([]domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Booking{}, f.bookings...), nil
}

func (f *fakeBookingRepo) ListForAgent(_ context.Context, _ int64) ([]domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Booking{}, f.bookings...), nil
}

type fakeUserRepo struct {
	users      []domain.User
	listErr    error
	blockErr   error
	listCalls  int
	blockCalls int
}

func (f *fakeUserRepo) ListByRole(_ context.Context, _ domain.Role) ([]domain.User, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.User{}, f.users...), nil
}

func (f *fakeUserRepo) SetBlocked(_ context.Context, userID int64, blocked bool) error {
	f.blockCalls++
	if f.blockErr != nil {
		return f.blockErr
	}
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users[i].Active = !blocked
		}
	}
	return nil
}

type fakePackageRepo struct {
	packages []domain.TravelPackage
	err      error
	calls    int
}

func (f *fakePackageRepo) Browse(_ context.Context) ([]domain.TravelPackage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.TravelPackage{}, f.packages...), nil
}

func (f *fakePackageRepo) ListForAgent(_ context.Context, _ int64) ([]domain.TravelPackage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.TravelPackage{}, f.packages...), nil
}

type fakeStatsRepo struct {
	admin *domain.DashboardStats
	agent *domain.AgentStats
	err   error
}

func (f *fakeStatsRepo) AdminStats(_ context.Context) (*domain.DashboardStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.admin, nil
}

func (f *fakeStatsRepo) AgentStats(_ context.Context, _ int64) (*domain.AgentStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.agent, nil
}

// memoryKV backs snapshot tests without a running Redis.
type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Close() error { return nil }
