package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

func TestBookingsNewestFirst(t *testing.T) {
	bookings := []domain.Booking{
		{BookingID: 3, PackageTitle: "Alpine Escape"},
		{BookingID: 11, PackageTitle: "Coastal Drift"},
		{BookingID: 7, PackageTitle: "Desert Trail"},
	}

	got := BookingsNewestFirst(bookings)
	require.Len(t, got, 3)
	assert.Equal(t, int64(11), got[0].BookingID)
	assert.Equal(t, int64(7), got[1].BookingID)
	assert.Equal(t, int64(3), got[2].BookingID)

	assert.Equal(t, int64(3), bookings[0].BookingID)
}

func TestFilterUsers(t *testing.T) {
	users := []domain.User{
		{ID: 1, FirstName: "Mara", LastName: "Voss", Email: "mara@example.com"},
		{ID: 2, Email: "quiet@example.com"},
	}

	got := FilterUsers(users, "mara")
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// users without a name are still reachable by email
	got = FilterUsers(users, "QUIET")
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	assert.Equal(t, users, FilterUsers(users, ""))
}

func TestCountPackagesByStatus(t *testing.T) {
	packages := []domain.TravelPackage{
		{PackageID: 1, Status: domain.PackageStatusApproved},
		{PackageID: 2, Status: domain.PackageStatusPending},
		{PackageID: 3, Status: domain.PackageStatusApproved},
	}

	assert.Equal(t, 2, CountPackagesByStatus(packages, domain.PackageStatusApproved))
	assert.Equal(t, 1, CountPackagesByStatus(packages, domain.PackageStatusPending))
	assert.Equal(t, 0, CountPackagesByStatus(packages, domain.PackageStatusRejected))
}
