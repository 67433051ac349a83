package viewmodel

import (
	"sort"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// BookingsNewestFirst orders bookings by descending booking id, matching
// how the booking history screen presents them.
func BookingsNewestFirst(bookings []domain.Booking) []domain.Booking {
	result := make([]domain.Booking, len(bookings))
	copy(result, bookings)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].BookingID > result[j].BookingID
	})
	return result
}
