package repository

import (
	"context"
	"fmt"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// PackageRepository lists travel packages.
type PackageRepository interface {
	Browse(ctx context.Context) ([]domain.TravelPackage, error)
	ListForAgent(ctx context.Context, agentID int64) ([]domain.TravelPackage, error)
}

type packageRepository struct {
	api *apiclient.Client
}

// NewPackageRepository instantiates the API-backed repository.
func NewPackageRepository(api *apiclient.Client) PackageRepository {
	return &packageRepository{api: api}
}

func (r *packageRepository) Browse(ctx context.Context) ([]domain.TravelPackage, error) {
	var packages []domain.TravelPackage
	if err := r.api.Get(ctx, "/api/packages", &packages); err != nil {
		return nil, apperr.NewFetch("failed to list packages", err)
	}
	if packages == nil {
		packages = []domain.TravelPackage{}
	}
	return packages, nil
}

func (r *packageRepository) ListForAgent(ctx context.Context, agentID int64) ([]domain.TravelPackage, error) {
	var packages []domain.TravelPackage
	if err := r.api.Get(ctx, fmt.Sprintf("/api/packages/agent/%d", agentID), &packages); err != nil {
		return nil, apperr.NewFetch("failed to list agent packages", err)
	}
	if packages == nil {
		packages = []domain.TravelPackage{}
	}
	return packages, nil
}
