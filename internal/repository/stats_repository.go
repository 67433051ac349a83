package repository

import (
	"context"
	"fmt"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// StatsRepository fetches dashboard aggregates. All numbers are computed
// server-side; the client only displays them.
type StatsRepository interface {
	AdminStats(ctx context.Context) (*domain.DashboardStats, error)
	AgentStats(ctx context.Context, agentID int64) (*domain.AgentStats, error)
}

type statsRepository struct {
	api *apiclient.Client
}

// NewStatsRepository instantiates the API-backed repository.
func NewStatsRepository(api *apiclient.Client) StatsRepository {
	return &statsRepository{api: api}
}

func (r *statsRepository) AdminStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.api.Get(ctx, "/api/stats/admin", &stats); err != nil {
		return nil, apperr.NewFetch("failed to load admin stats", err)
	}
	return &stats, nil
}

func (r *statsRepository) AgentStats(ctx context.Context, agentID int64) (*domain.AgentStats, error) {
	var stats domain.AgentStats
	if err := r.api.Get(ctx, fmt.Sprintf("/api/stats/agent/%d", agentID), &stats); err != nil {
		return nil, apperr.NewFetch("failed to load agent stats", err)
	}
	return &stats, nil
}
