package repository

import (
	"context"
	"fmt"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// UserRepository exposes the admin user-management operations.
type UserRepository interface {
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	SetBlocked(ctx context.Context, userID int64, blocked bool) error
}

type userRepository struct {
	api *apiclient.Client
}

// NewUserRepository instantiates the API-backed repository.
func NewUserRepository(api *apiclient.Client) UserRepository {
	return &userRepository{api: api}
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var users []domain.User
	if err := r.api.Get(ctx, fmt.Sprintf("/api/v1/users/role/%s", role), &users); err != nil {
		return nil, apperr.NewFetch("failed to list users", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (r *userRepository) SetBlocked(ctx context.Context, userID int64, blocked bool) error {
	path := fmt.Sprintf("/api/v1/users/%d/block?blocked=%t", userID, blocked)
	if err := r.api.Put(ctx, path, nil, nil); err != nil {
		return apperr.NewUpdate("failed to update user status", err)
	}
	return nil
}
