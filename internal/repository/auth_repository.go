package repository

import (
	"context"
	"strings"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// LoginRequest carries credentials to the backend.
type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	domain.User
	Token string `json:"token"`
}

// AuthRepository exchanges credentials for an identity and bearer token.
type AuthRepository interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authRepository struct {
	api *apiclient.Client
}

// NewAuthRepository instantiates the API-backed repository.
func NewAuthRepository(api *apiclient.Client) AuthRepository {
	return &authRepository{api: api}
}

func (r *authRepository) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, apperr.NewValidation("email and password are required", nil)
	}
	if !req.Role.Valid() {
		return nil, apperr.NewValidation("unknown role", map[string]any{"role": req.Role})
	}

	var result LoginResult
	if err := r.api.Post(ctx, "/api/v1/auth/login", req, &result); err != nil {
		return nil, apperr.NewAuth("login failed", err)
	}
	return &result, nil
}
