package screen

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/access"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/repository"
	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
)

// AgentDashboard aggregates everything the agent landing screen shows:
// packages, bookings, tickets, and server-computed stats.
type AgentDashboard struct {
	agent    domain.User
	packages repository.PackageRepository
	bookings repository.BookingRepository
	tickets  repository.TicketRepository
	stats    repository.StatsRepository
	logger   *zap.Logger

	Packages []domain.TravelPackage
	Bookings []domain.Booking
	Tickets  []domain.Ticket
	Stats    *domain.AgentStats
	Banner   Banner
}

// AgentDashboardDeps bundles collaborators for the agent dashboard.
type AgentDashboardDeps struct {
	Packages repository.PackageRepository
	Bookings repository.BookingRepository
	Tickets  repository.TicketRepository
	Stats    repository.StatsRepository
	Logger   *zap.Logger
}

// NewAgentDashboard constructs the screen for the given session identity.
func NewAgentDashboard(agent domain.User, deps AgentDashboardDeps) (*AgentDashboard, error) {
	if err := access.Require(agent.Role, access.OpViewAgentStats); err != nil {
		return nil, err
	}
	return &AgentDashboard{
		agent:    agent,
		packages: deps.Packages,
		bookings: deps.Bookings,
		tickets:  deps.Tickets,
		stats:    deps.Stats,
		logger:   deps.Logger,
	}, nil
}

// Refresh issues the four dashboard fetches concurrently and awaits them
// jointly. Each result lands in its own field; partial failure keeps the
// stale pieces visible and surfaces one banner.
func (d *AgentDashboard) Refresh(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		packages []domain.TravelPackage
		bookings []domain.Booking
		tickets  []domain.Ticket
		stats    *domain.AgentStats
		errs     [4]error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		packages, errs[0] = d.packages.ListForAgent(ctx, d.agent.ID)
	}()
	go func() {
		defer wg.Done()
		bookings, errs[1] = d.bookings.ListForAgent(ctx, d.agent.ID)
	}()
	go func() {
		defer wg.Done()
		tickets, errs[2] = d.tickets.ListForAgent(ctx, d.agent.ID)
	}()
	go func() {
		defer wg.Done()
		stats, errs[3] = d.stats.AgentStats(ctx, d.agent.ID)
	}()
	wg.Wait()

	if errs[0] == nil {
		d.Packages = packages
	}
	if errs[1] == nil {
		d.Bookings = bookings
	}
	if errs[2] == nil {
		d.Tickets = tickets
	}
	if errs[3] == nil {
		d.Stats = stats
	}

	for _, err := range errs {
		if err != nil {
			d.Banner = errorBanner("Unable to load dashboard data.")
			return err
		}
	}
	d.Banner = Banner{}
	return nil
}

// ApprovedPackages counts the agent's approved packages.
func (d *AgentDashboard) ApprovedPackages() int {
	return viewmodel.CountPackagesByStatus(d.Packages, domain.PackageStatusApproved)
}

// PendingPackages counts the agent's packages awaiting approval.
func (d *AgentDashboard) PendingPackages() int {
	return viewmodel.CountPackagesByStatus(d.Packages, domain.PackageStatusPending)
}

// ActiveTickets counts queue tickets that still need attention.
func (d *AgentDashboard) ActiveTickets() int {
	return viewmodel.CountActive(d.Tickets)
}

// AdminDashboard shows the platform-wide stats panel.
type AdminDashboard struct {
	admin  domain.User
	stats  repository.StatsRepository
	logger *zap.Logger

	Stats  *domain.DashboardStats
	Banner Banner
}

// NewAdminDashboard constructs the screen for the given session identity.
func NewAdminDashboard(admin domain.User, stats repository.StatsRepository, logger *zap.Logger) (*AdminDashboard, error) {
	if err := access.Require(admin.Role, access.OpViewAdminStats); err != nil {
		return nil, err
	}
	return &AdminDashboard{admin: admin, stats: stats, logger: logger}, nil
}

// Refresh re-fetches the stats panel. A failure keeps the prior figures.
func (d *AdminDashboard) Refresh(ctx context.Context) error {
	stats, err := d.stats.AdminStats(ctx)
	if err != nil {
		d.Banner = errorBanner("Unable to load dashboard data.")
		return err
	}
	d.Stats = stats
	d.Banner = Banner{}
	return nil
}
