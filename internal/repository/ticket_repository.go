package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// TicketRepository mediates support-ticket operations against the backend.
// Every failure surfaces through the apperr taxonomy so callers can tell
// "no tickets" apart from "fetch failed". Mutations return the backend's
// view of the resource; callers are expected to re-fetch the list they
// display rather than patch local state.
type TicketRepository interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.Ticket, error)
	ListForAgent(ctx context.Context, agentID int64) ([]domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	Create(ctx context.Context, draft domain.TicketDraft) (*domain.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID int64, status domain.TicketStatus) (*domain.Ticket, error)
}

type ticketRepository struct {
	api *apiclient.Client
}

// NewTicketRepository instantiates the API-backed repository.
func NewTicketRepository(api *apiclient.Client) TicketRepository {
	return &ticketRepository{api: api}
}

func (r *ticketRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	if err := r.api.Get(ctx, fmt.Sprintf("/api/support/user/%d", userID), &tickets); err != nil {
		return nil, apperr.NewFetch("failed to list tickets", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

func (r *ticketRepository) ListForAgent(ctx context.Context, agentID int64) ([]domain.Ticket, error) {
	// The backend decides which tickets fall inside an agent's scope; the
	// client never filters the result further.
	var tickets []domain.Ticket
	if err := r.api.Get(ctx, fmt.Sprintf("/api/support/agent/%d", agentID), &tickets); err != nil {
		return nil, apperr.NewFetch("failed to list agent tickets", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	if err := r.api.Get(ctx, "/api/support/all", &tickets); err != nil {
		return nil, apperr.NewFetch("failed to list all tickets", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

func (r *ticketRepository) Create(ctx context.Context, draft domain.TicketDraft) (*domain.Ticket, error) {
	draft.Subject = strings.TrimSpace(draft.Subject)
	draft.Description = strings.TrimSpace(draft.Description)

	// Validated locally so an incomplete form never costs a round trip.
	missing := map[string]any{}
	if draft.Subject == "" {
		missing["subject"] = "required"
	}
	if draft.Description == "" {
		missing["description"] = "required"
	}
	if len(missing) > 0 {
		return nil, apperr.NewValidation("subject and description are required", missing)
	}

	if draft.Priority == "" {
		draft.Priority = domain.TicketPriorityLow
	}
	if !draft.Priority.Valid() {
		return nil, apperr.NewValidation("unknown priority", map[string]any{"priority": draft.Priority})
	}

	var created domain.Ticket
	if err := r.api.Post(ctx, "/api/support", draft, &created); err != nil {
		return nil, apperr.NewUpdate("failed to raise ticket", err)
	}
	return &created, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, ticketID int64, status domain.TicketStatus) (*domain.Ticket, error) {
	// Only enum membership is checked here. The client imposes no
	// transition graph; the backend is the authority on legality.
	if !status.Valid() {
		return nil, apperr.NewValidation("unknown status", map[string]any{"status": status})
	}

	var updated domain.Ticket
	path := fmt.Sprintf("/api/support/%d/status/%s", ticketID, status)
	if err := r.api.Put(ctx, path, nil, &updated); err != nil {
		return nil, apperr.NewUpdate("failed to update status", err)
	}
	return &updated, nil
}
