package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/access"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/events"
	"github.com/odyssey-travel/odyssey-console/internal/repository"
	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
)

// UserAdmin is the ADMIN user-management screen: list client accounts,
// search them, block and unblock.
type UserAdmin struct {
	admin      domain.User
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger

	Users      []domain.User
	SearchTerm string
	Banner     Banner
}

// UserAdminDeps bundles collaborators for user administration.
type UserAdminDeps struct {
	Users      repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewUserAdmin constructs the screen for the given session identity.
func NewUserAdmin(admin domain.User, deps UserAdminDeps) (*UserAdmin, error) {
	if err := access.Require(admin.Role, access.OpManageUsers); err != nil {
		return nil, err
	}
	return &UserAdmin{
		admin:      admin,
		users:      deps.Users,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}, nil
}

// Refresh re-fetches the client accounts. A failure keeps the prior list.
func (a *UserAdmin) Refresh(ctx context.Context) error {
	if err := access.Require(a.admin.Role, access.OpManageUsers); err != nil {
		a.Banner = errorBanner(err.Error())
		return err
	}

	users, err := a.users.ListByRole(ctx, domain.RoleClient)
	if err != nil {
		a.Banner = errorBanner("Could not get users.")
		return err
	}
	a.Users = users
	a.Banner = Banner{}
	return nil
}

// ToggleBlock flips one account's blocked flag and re-fetches the list.
func (a *UserAdmin) ToggleBlock(ctx context.Context, userID int64, blocked bool) error {
	if err := access.Require(a.admin.Role, access.OpManageUsers); err != nil {
		a.Banner = errorBanner(err.Error())
		return err
	}

	if err := a.users.SetBlocked(ctx, userID, blocked); err != nil {
		a.Banner = errorBanner("Could not update user status.")
		return err
	}

	if a.dispatcher != nil {
		_ = a.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserBlockToggled,
			Actor:     events.Actor{UserID: a.admin.ID, Role: a.admin.Role},
			Timestamp: time.Now(),
			Payload:   events.UserBlockToggledPayload{UserID: userID, Blocked: blocked},
		})
	}

	if err := a.Refresh(ctx); err != nil {
		return err
	}
	verb := "unblocked"
	if blocked {
		verb = "blocked"
	}
	a.Banner = successBanner(fmt.Sprintf("User #%d %s", userID, verb))
	return nil
}

// Visible returns the accounts matching the search term.
func (a *UserAdmin) Visible() []domain.User {
	return viewmodel.FilterUsers(a.Users, a.SearchTerm)
}
