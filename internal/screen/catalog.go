package screen

import (
	"context"

	"github.com/odyssey-travel/odyssey-console/internal/access"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/repository"
	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
)

// Catalog wraps the read-only package and booking listings behind the
// role-access layer for whichever identity is logged in.
type Catalog struct {
	user     domain.User
	packages repository.PackageRepository
	bookings repository.BookingRepository
}

// NewCatalog constructs the listing screen.
func NewCatalog(user domain.User, packages repository.PackageRepository, bookings repository.BookingRepository) *Catalog {
	return &Catalog{user: user, packages: packages, bookings: bookings}
}

// BrowsePackages lists the public package catalog (CLIENT).
func (c *Catalog) BrowsePackages(ctx context.Context) ([]domain.TravelPackage, error) {
	if err := access.Require(c.user.Role, access.OpBrowsePackages); err != nil {
		return nil, err
	}
	return c.packages.Browse(ctx)
}

// MyPackages lists the agent's own packages (AGENT).
func (c *Catalog) MyPackages(ctx context.Context) ([]domain.TravelPackage, error) {
	if err := access.Require(c.user.Role, access.OpListAgentPackages); err != nil {
		return nil, err
	}
	return c.packages.ListForAgent(ctx, c.user.ID)
}

// BookingHistory lists the client's own bookings newest first (CLIENT).
func (c *Catalog) BookingHistory(ctx context.Context) ([]domain.Booking, error) {
	if err := access.RequireSelf(c.user, access.OpListOwnBookings, c.user.ID); err != nil {
		return nil, err
	}
	bookings, err := c.bookings.ListForUser(ctx, c.user.ID)
	if err != nil {
		return nil, err
	}
	return viewmodel.BookingsNewestFirst(bookings), nil
}

// BookingsOverview lists bookings against the agent's packages (AGENT).
func (c *Catalog) BookingsOverview(ctx context.Context) ([]domain.Booking, error) {
	if err := access.Require(c.user.Role, access.OpListAgentBookings); err != nil {
		return nil, err
	}
	return c.bookings.ListForAgent(ctx, c.user.ID)
}
