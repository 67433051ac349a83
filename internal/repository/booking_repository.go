package repository

import (
	"context"
	"fmt"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// BookingRepository lists reservations by owner scope.
type BookingRepository interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListForAgent(ctx context.Context, agentID int64) ([]domain.Booking, error)
}

type bookingRepository struct {
	api *apiclient.Client
}

// NewBookingRepository instantiates the API-backed repository.
func NewBookingRepository(api *apiclient.Client) BookingRepository {
	return &bookingRepository{api: api}
}

func (r *bookingRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := r.api.Get(ctx, fmt.Sprintf("/api/bookings/user/%d", userID), &bookings); err != nil {
		return nil, apperr.NewFetch("failed to list bookings", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

func (r *bookingRepository) ListForAgent(ctx context.Context, agentID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := r.api.Get(ctx, fmt.Sprintf("/api/bookings/agent/%d", agentID), &bookings); err != nil {
		return nil, apperr.NewFetch("failed to list agent bookings", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}
