package viewmodel

import (
	"strings"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// FilterUsers keeps users whose display name or email contains the search
// term, case-insensitively. An empty term keeps everyone.
func FilterUsers(users []domain.User, searchTerm string) []domain.User {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		result := make([]domain.User, len(users))
		copy(result, users)
		return result
	}

	result := make([]domain.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.DisplayName()), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			result = append(result, u)
		}
	}
	return result
}
