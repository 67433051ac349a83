// Package viewmodel derives presentation views from fetched collections.
// Everything here is a pure function over slices: no network access, no
// shared state, inputs never mutated.
package viewmodel

import (
	"sort"
	"strconv"
	"strings"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// StatusAll is the filter value that matches every status.
const StatusAll = "ALL"

// TicketQuery narrows a ticket list for display.
type TicketQuery struct {
	SearchTerm string
	Status     string
}

// FilterTickets applies the query as a pure conjunction: the status must
// match (or be ALL) and the search term, when present, must appear
// case-insensitively in the subject, the description, or the ticket id
// rendered as text.
func FilterTickets(tickets []domain.Ticket, q TicketQuery) []domain.Ticket {
	term := strings.ToLower(strings.TrimSpace(q.SearchTerm))
	status := q.Status
	if status == "" {
		status = StatusAll
	}

	result := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if status != StatusAll && string(t.Status) != status {
			continue
		}
		if term != "" && !matchesSearch(t, term) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchesSearch(t domain.Ticket, term string) bool {
	return strings.Contains(strings.ToLower(t.Subject), term) ||
		strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strconv.FormatInt(t.TicketID, 10), term)
}

// ReverseChronological orders tickets newest first. The sort is stable, so
// tickets sharing a creation time keep their relative order.
func ReverseChronological(tickets []domain.Ticket) []domain.Ticket {
	result := make([]domain.Ticket, len(tickets))
	copy(result, tickets)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// CountActive counts tickets that still need attention, meaning neither
// RESOLVED nor CLOSED.
func CountActive(tickets []domain.Ticket) int {
	count := 0
	for _, t := range tickets {
		if t.Status.Active() {
			count++
		}
	}
	return count
}
