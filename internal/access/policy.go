// Package access gates repository operations by role before any network
// call is made. This is a defense-in-depth layer at the client boundary:
// the backend remains the real enforcement point, and nothing here should
// be mistaken for a security guarantee.
package access

import (
	"fmt"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// Operation names a client-reachable backend operation.
type Operation string

const (
	OpRaiseTicket        Operation = "ticket.raise"
	OpListOwnTickets     Operation = "ticket.list_own"
	OpListAgentTickets   Operation = "ticket.list_agent"
	OpListAllTickets     Operation = "ticket.list_all"
	OpUpdateTicketStatus Operation = "ticket.update_status"

	OpListOwnBookings   Operation = "booking.list_own"
	OpListAgentBookings Operation = "booking.list_agent"

	OpBrowsePackages    Operation = "package.browse"
	OpListAgentPackages Operation = "package.list_agent"

	OpManageUsers    Operation = "user.manage"
	OpViewAdminStats Operation = "stats.admin"
	OpViewAgentStats Operation = "stats.agent"
)

var policy = map[domain.Role]map[Operation]struct{}{
	domain.RoleClient: allow(
		OpRaiseTicket,
		OpListOwnTickets,
		OpListOwnBookings,
		OpBrowsePackages,
	),
	domain.RoleAgent: allow(
		OpListAgentTickets,
		OpUpdateTicketStatus,
		OpListAgentBookings,
		OpListAgentPackages,
		OpViewAgentStats,
	),
	domain.RoleAdmin: allow(
		OpListAllTickets,
		OpUpdateTicketStatus,
		OpManageUsers,
		OpViewAdminStats,
	),
}

func allow(ops ...Operation) map[Operation]struct{} {
	set := make(map[Operation]struct{}, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return set
}

// Allowed reports whether the role may invoke the operation.
func Allowed(role domain.Role, op Operation) bool {
	ops, ok := policy[role]
	if !ok {
		return false
	}
	_, ok = ops[op]
	return ok
}

// Require returns a permission error when the role may not invoke the
// operation.
func Require(role domain.Role, op Operation) error {
	if Allowed(role, op) {
		return nil
	}
	return apperr.NewPermission(fmt.Sprintf("role %s may not perform %s", role, op))
}

// RequireSelf additionally pins an operation to the caller's own identity.
// A CLIENT may only ever act on tickets and bookings scoped to itself.
func RequireSelf(user domain.User, op Operation, targetUserID int64) error {
	if err := Require(user.Role, op); err != nil {
		return err
	}
	if user.Role == domain.RoleClient && user.ID != targetUserID {
		return apperr.NewPermission("clients may only access their own records")
	}
	return nil
}
