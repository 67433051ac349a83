package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

// TicketSnapshots keeps the last successful ticket list per scope so a
// failed fetch can degrade to a stale-but-visible view across console runs.
// Every operation is best-effort; a broken cache never fails the caller.
type TicketSnapshots struct {
	kv     KV
	ttl    time.Duration
	logger *zap.Logger
}

// NewTicketSnapshots builds the snapshot store.
func NewTicketSnapshots(kv KV, ttl time.Duration, logger *zap.Logger) *TicketSnapshots {
	return &TicketSnapshots{kv: kv, ttl: ttl, logger: logger}
}

// UserScope keys the snapshot of one client's own tickets.
func UserScope(userID int64) string {
	return fmt.Sprintf("tickets:user:%d", userID)
}

// AgentScope keys the snapshot of one agent's queue.
func AgentScope(agentID int64) string {
	return fmt.Sprintf("tickets:agent:%d", agentID)
}

// AdminScope keys the snapshot of the full ticket stream.
func AdminScope() string {
	return "tickets:all"
}

// Store records the last good list for a scope.
func (s *TicketSnapshots) Store(ctx context.Context, scope string, tickets []domain.Ticket) {
	if s == nil || s.kv == nil {
		return
	}
	payload, err := json.Marshal(tickets)
	if err != nil {
		return
	}
	if err := s.kv.Set(ctx, scope, string(payload), s.ttl); err != nil && s.logger != nil {
		s.logger.Debug("snapshot store failed", zap.String("scope", scope), zap.Error(err))
	}
}

// Load returns the last good list for a scope, if one exists.
func (s *TicketSnapshots) Load(ctx context.Context, scope string) ([]domain.Ticket, bool) {
	if s == nil || s.kv == nil {
		return nil, false
	}
	raw, ok, err := s.kv.Get(ctx, scope)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("snapshot load failed", zap.String("scope", scope), zap.Error(err))
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		return nil, false
	}
	return tickets, true
}
