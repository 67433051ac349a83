package viewmodel

import "github.com/odyssey-travel/odyssey-console/internal/domain"

// CountPackagesByStatus counts packages in the given approval state, used
// for the agent dashboard's approved/pending figures.
func CountPackagesByStatus(packages []domain.TravelPackage, status domain.PackageStatus) int {
	count := 0
	for _, p := range packages {
		if p.Status == status {
			count++
		}
	}
	return count
}
