package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/access"
	"github.com/odyssey-travel/odyssey-console/internal/cache"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/events"
	"github.com/odyssey-travel/odyssey-console/internal/repository"
	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
)

// AgentQueue is the AGENT support screen: the tickets inside the agent's
// scope, with status updates. The backend decides what the scope contains.
type AgentQueue struct {
	agent      domain.User
	tickets    repository.TicketRepository
	snapshots  *cache.TicketSnapshots
	dispatcher events.Dispatcher
	logger     *zap.Logger

	Tickets []domain.Ticket
	Banner  Banner
	Stale   bool
}

// AgentQueueDeps bundles collaborators for the agent queue.
type AgentQueueDeps struct {
	Tickets    repository.TicketRepository
	Snapshots  *cache.TicketSnapshots
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAgentQueue constructs the screen for the given session identity.
func NewAgentQueue(agent domain.User, deps AgentQueueDeps) (*AgentQueue, error) {
	if err := access.Require(agent.Role, access.OpListAgentTickets); err != nil {
		return nil, err
	}
	return &AgentQueue{
		agent:      agent,
		tickets:    deps.Tickets,
		snapshots:  deps.Snapshots,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}, nil
}

// Refresh re-fetches the agent's queue. A failure keeps whatever is already
// displayed; with nothing displayed, the last good snapshot is shown stale.
func (q *AgentQueue) Refresh(ctx context.Context) error {
	if err := access.Require(q.agent.Role, access.OpListAgentTickets); err != nil {
		q.Banner = errorBanner(err.Error())
		return err
	}

	tickets, err := q.tickets.ListForAgent(ctx, q.agent.ID)
	if err != nil {
		q.Banner = errorBanner("Unable to sync support stream.")
		if len(q.Tickets) == 0 {
			if snapshot, ok := q.snapshots.Load(ctx, cache.AgentScope(q.agent.ID)); ok {
				q.Tickets = snapshot
				q.Stale = true
			}
		}
		return err
	}

	q.Tickets = tickets
	q.Stale = false
	q.Banner = Banner{}
	if q.snapshots != nil {
		q.snapshots.Store(ctx, cache.AgentScope(q.agent.ID), tickets)
	}
	return nil
}

// UpdateStatus applies a status transition and then re-fetches the queue.
// Nothing is patched locally; on failure the displayed state is untouched.
func (q *AgentQueue) UpdateStatus(ctx context.Context, ticketID int64, status domain.TicketStatus) error {
	if err := access.Require(q.agent.Role, access.OpUpdateTicketStatus); err != nil {
		q.Banner = errorBanner(err.Error())
		return err
	}

	updated, err := q.tickets.UpdateStatus(ctx, ticketID, status)
	if err != nil {
		q.Banner = errorBanner("Failed to update status.")
		return err
	}

	q.publish(ctx, events.Event{
		Type: events.EventTicketStatusChanged,
		Payload: events.TicketStatusChangedPayload{
			TicketID:  updated.TicketID,
			NewStatus: updated.Status,
		},
	})

	if err := q.Refresh(ctx); err != nil {
		return err
	}
	q.Banner = successBanner(fmt.Sprintf("Ticket #%d updated to %s", ticketID, status))
	return nil
}

// Queue returns the agent's tickets newest first.
func (q *AgentQueue) Queue() []domain.Ticket {
	return viewmodel.ReverseChronological(q.Tickets)
}

// ActiveCount reports how many queue tickets still need attention.
func (q *AgentQueue) ActiveCount() int {
	return viewmodel.CountActive(q.Tickets)
}

func (q *AgentQueue) publish(ctx context.Context, event events.Event) {
	if q.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	event.Actor = events.Actor{UserID: q.agent.ID, Role: q.agent.Role}
	_ = q.dispatcher.Publish(ctx, event)
}
