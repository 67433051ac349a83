// Package stubapi is a local stand-in for the Odyssey backend. It serves
// the same REST contract from in-memory fixtures so the console and its
// integration tests run without infrastructure. It reproduces the
// backend's observable behavior, including the permissive status update
// (any status may move to any other status).
package stubapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// account pairs a user with its stub credential.
type account struct {
	User     domain.User
	Password string
}

// Store holds the fixture state behind a single lock.
type Store struct {
	mu           sync.Mutex
	accounts     []account
	packages     []domain.TravelPackage
	bookings     []domain.Booking
	tickets      []domain.Ticket
	nextTicketID int64
}

// SeedStore builds a store with a small consistent world: one admin, one
// agent with two packages, and two clients with bookings and tickets.
func SeedStore() *Store {
	now := time.Now().UTC().Truncate(time.Second)
	title1 := "Aegean Island Hopper"
	title2 := "Patagonia Trek"

	s := &Store{
		accounts: []account{
			{User: domain.User{ID: 1, FirstName: "Ada", LastName: "Moreau", Email: "admin@odyssey.test", Role: domain.RoleAdmin, Active: true}, Password: "admin"},
			{User: domain.User{ID: 2, FirstName: "Theo", LastName: "Katsaros", Email: "agent@odyssey.test", Role: domain.RoleAgent, Active: true}, Password: "agent"},
			{User: domain.User{ID: 3, FirstName: "Mara", LastName: "Lindqvist", Email: "mara@odyssey.test", Role: domain.RoleClient, Active: true}, Password: "client"},
			{User: domain.User{ID: 4, FirstName: "", LastName: "", Email: "nils@odyssey.test", Role: domain.RoleClient, Active: true}, Password: "client"},
		},
		packages: []domain.TravelPackage{
			{PackageID: 1, AgentID: 2, Title: title1, Destination: "Greece", Price: 1890, Status: domain.PackageStatusApproved},
			{PackageID: 2, AgentID: 2, Title: title2, Destination: "Chile", Price: 3200, Status: domain.PackageStatusPending},
		},
		bookings: []domain.Booking{
			{BookingID: 1, UserID: 3, PackageID: 1, PackageTitle: title1, TravelDate: now.AddDate(0, 1, 0), Travelers: 2, TotalAmount: 3780, Status: "CONFIRMED"},
			{BookingID: 2, UserID: 4, PackageID: 1, PackageTitle: title1, TravelDate: now.AddDate(0, 2, 0), Travelers: 1, TotalAmount: 1890, Status: "CONFIRMED"},
		},
		nextTicketID: 100,
	}

	booking1 := int64(1)
	user3, user4 := int64(3), int64(4)
	s.tickets = []domain.Ticket{
		{TicketID: 97, UserID: &user3, BookingID: &booking1, Subject: "Refund requested for booking", Description: "Travel date no longer works for us.", Priority: domain.TicketPriorityHigh, Status: domain.TicketStatusOpen, CreatedAt: now.Add(-72 * time.Hour), LastUpdatedAt: now.Add(-72 * time.Hour), PackageTitle: &title1},
		{TicketID: 98, UserID: &user3, Subject: "Seat change", Description: "Prefer aisle seats on the ferry leg.", Priority: domain.TicketPriorityLow, Status: domain.TicketStatusInProgress, CreatedAt: now.Add(-48 * time.Hour), LastUpdatedAt: now.Add(-24 * time.Hour)},
		{TicketID: 99, UserID: &user4, Subject: "Invoice copy", Description: "Need a second invoice copy for expenses.", Priority: domain.TicketPriorityMedium, Status: domain.TicketStatusResolved, CreatedAt: now.Add(-24 * time.Hour), LastUpdatedAt: now.Add(-2 * time.Hour)},
	}
	return s
}

// Authenticate matches credentials against the fixture accounts.
func (s *Store) Authenticate(email, password string, role domain.Role) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if strings.EqualFold(acc.User.Email, email) && acc.Password == password && acc.User.Role == role {
			user := acc.User
			return &user, true
		}
	}
	return nil, false
}

// TicketsByUser lists tickets owned by the user, oldest first.
func (s *Store) TicketsByUser(userID int64) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []domain.Ticket{}
	for _, t := range s.tickets {
		if t.UserID != nil && *t.UserID == userID {
			result = append(result, t)
		}
	}
	return result
}

// TicketsByAgent lists tickets reachable through the agent's packages'
// bookings, mirroring the backend's scope join.
func (s *Store) TicketsByAgent(agentID int64) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	agentPackages := map[int64]struct{}{}
	for _, p := range s.packages {
		if p.AgentID == agentID {
			agentPackages[p.PackageID] = struct{}{}
		}
	}
	agentBookings := map[int64]struct{}{}
	for _, b := range s.bookings {
		if _, ok := agentPackages[b.PackageID]; ok {
			agentBookings[b.BookingID] = struct{}{}
		}
	}

	result := []domain.Ticket{}
	for _, t := range s.tickets {
		if t.BookingID == nil {
			continue
		}
		if _, ok := agentBookings[*t.BookingID]; ok {
			result = append(result, t)
		}
	}
	return result
}

// AllTickets lists every ticket.
func (s *Store) AllTickets() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]domain.Ticket, len(s.tickets))
	copy(result, s.tickets)
	return result
}

// CreateTicket appends a ticket with backend-assigned identity, timestamps,
// and OPEN status.
func (s *Store) CreateTicket(draft domain.TicketDraft) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	userID := draft.UserID
	ticket := domain.Ticket{
		TicketID:      s.nextTicketID,
		UserID:        &userID,
		BookingID:     draft.BookingID,
		Subject:       draft.Subject,
		Description:   draft.Description,
		Priority:      draft.Priority,
		Status:        domain.TicketStatusOpen,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if draft.BookingID != nil {
		for _, b := range s.bookings {
			if b.BookingID == *draft.BookingID {
				title := b.PackageTitle
				ticket.PackageTitle = &title
				break
			}
		}
	}
	s.nextTicketID++
	s.tickets = append(s.tickets, ticket)
	return ticket
}

// UpdateTicketStatus sets a ticket's status without restricting the
// transition, as the backend does.
func (s *Store) UpdateTicketStatus(ticketID int64, status domain.TicketStatus) (*domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].TicketID == ticketID {
			s.tickets[i].Status = status
			s.tickets[i].LastUpdatedAt = time.Now().UTC()
			ticket := s.tickets[i]
			return &ticket, true
		}
	}
	return nil, false
}

// BookingsByUser lists bookings owned by the user.
func (s *Store) BookingsByUser(userID int64) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []domain.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result
}

// BookingsByAgent lists bookings against the agent's packages.
func (s *Store) BookingsByAgent(agentID int64) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	agentPackages := map[int64]struct{}{}
	for _, p := range s.packages {
		if p.AgentID == agentID {
			agentPackages[p.PackageID] = struct{}{}
		}
	}
	result := []domain.Booking{}
	for _, b := range s.bookings {
		if _, ok := agentPackages[b.PackageID]; ok {
			result = append(result, b)
		}
	}
	return result
}

// Packages lists the whole catalog.
func (s *Store) Packages() []domain.TravelPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]domain.TravelPackage, len(s.packages))
	copy(result, s.packages)
	return result
}

// PackagesByAgent lists one agent's packages.
func (s *Store) PackagesByAgent(agentID int64) []domain.TravelPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []domain.TravelPackage{}
	for _, p := range s.packages {
		if p.AgentID == agentID {
			result = append(result, p)
		}
	}
	return result
}

// UsersByRole lists accounts with the given role.
func (s *Store) UsersByRole(role domain.Role) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []domain.User{}
	for _, acc := range s.accounts {
		if acc.User.Role == role {
			result = append(result, acc.User)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// SetUserBlocked flips an account's active flag.
func (s *Store) SetUserBlocked(userID int64, blocked bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].User.ID == userID {
			s.accounts[i].User.Active = !blocked
			return true
		}
	}
	return false
}

// AdminStats derives the platform figures from the fixtures.
func (s *Store) AdminStats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.DashboardStats{
		TotalBookings: int64(len(s.bookings)),
		TotalPackages: int64(len(s.packages)),
	}
	for _, b := range s.bookings {
		stats.TotalRevenue += b.TotalAmount
	}
	for _, acc := range s.accounts {
		switch acc.User.Role {
		case domain.RoleClient:
			stats.TotalCustomers++
		case domain.RoleAgent:
			stats.TotalAgents++
		}
	}
	for _, p := range s.packages {
		if p.Status == domain.PackageStatusPending {
			stats.PendingApprovals++
		}
	}
	stats.YoYData = monthlyTrend(s.bookings)
	stats.RevenueData = stats.YoYData
	return stats
}

// AgentStats derives one agent's figures from the fixtures.
func (s *Store) AgentStats(agentID int64) domain.AgentStats {
	packages := s.PackagesByAgent(agentID)
	bookings := s.BookingsByAgent(agentID)

	stats := domain.AgentStats{
		TotalPackages:  int64(len(packages)),
		ActiveBookings: int64(len(bookings)),
	}
	for _, p := range packages {
		if p.Status == domain.PackageStatusPending {
			stats.PendingApprovals++
		}
	}
	for _, b := range bookings {
		stats.TotalEarnings += b.TotalAmount
	}
	stats.MonthlyTrend = monthlyTrend(bookings)
	return stats
}

func monthlyTrend(bookings []domain.Booking) []domain.MonthlyTrend {
	byMonth := map[string]*domain.MonthlyTrend{}
	order := []string{}
	for _, b := range bookings {
		month := b.TravelDate.Format("Jan")
		trend, ok := byMonth[month]
		if !ok {
			trend = &domain.MonthlyTrend{Month: month}
			byMonth[month] = trend
			order = append(order, month)
		}
		trend.Count++
		trend.Customers++
		trend.Amount += b.TotalAmount
	}
	result := make([]domain.MonthlyTrend, 0, len(order))
	for _, month := range order {
		result = append(result, *byMonth[month])
	}
	return result
}
