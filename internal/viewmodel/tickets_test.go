package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
)

func sampleTickets() []domain.Ticket {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Ticket{
		{TicketID: 97, Subject: "Refund requested for booking", Description: "Charged twice", Status: domain.TicketStatusOpen, CreatedAt: base},
		{TicketID: 98, Subject: "Seat change", Description: "Window seat please", Status: domain.TicketStatusInProgress, CreatedAt: base.Add(time.Hour)},
		{TicketID: 99, Subject: "Old complaint", Description: "Handled long ago", Status: domain.TicketStatusResolved, CreatedAt: base.Add(-48 * time.Hour)},
		{TicketID: 100, Subject: "Closed thread", Description: "No further action", Status: domain.TicketStatusClosed, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestFilterTicketsIdentity(t *testing.T) {
	tickets := sampleTickets()

	got := FilterTickets(tickets, TicketQuery{})
	assert.Equal(t, tickets, got)

	got = FilterTickets(tickets, TicketQuery{Status: StatusAll})
	assert.Equal(t, tickets, got)
}

func TestFilterTicketsSearch(t *testing.T) {
	tickets := sampleTickets()

	got := FilterTickets(tickets, TicketQuery{SearchTerm: "refund"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(97), got[0].TicketID)

	// search is case-insensitive over subject and description
	got = FilterTickets(tickets, TicketQuery{SearchTerm: "WINDOW"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(98), got[0].TicketID)

	// the ticket id rendered as text is searchable too
	got = FilterTickets(tickets, TicketQuery{SearchTerm: "99"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(99), got[0].TicketID)

	got = FilterTickets(tickets, TicketQuery{SearchTerm: "no such ticket"})
	assert.Empty(t, got)
}

func TestFilterTicketsStatusAndSearchConjunction(t *testing.T) {
	tickets := sampleTickets()

	got := FilterTickets(tickets, TicketQuery{Status: "OPEN"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(97), got[0].TicketID)

	// both clauses must hold
	got = FilterTickets(tickets, TicketQuery{SearchTerm: "refund", Status: "CLOSED"})
	assert.Empty(t, got)

	// an unknown status matches nothing rather than everything
	got = FilterTickets(tickets, TicketQuery{Status: "ESCALATED"})
	assert.Empty(t, got)
}

func TestFilterTicketsDoesNotMutateInput(t *testing.T) {
	tickets := sampleTickets()
	want := sampleTickets()

	FilterTickets(tickets, TicketQuery{SearchTerm: "refund", Status: "OPEN"})
	assert.Equal(t, want, tickets)
}

func TestReverseChronological(t *testing.T) {
	tickets := sampleTickets()

	got := ReverseChronological(tickets)
	require.Len(t, got, 4)
	assert.Equal(t, int64(100), got[0].TicketID)
	assert.Equal(t, int64(98), got[1].TicketID)
	assert.Equal(t, int64(97), got[2].TicketID)
	assert.Equal(t, int64(99), got[3].TicketID)

	// input order untouched
	assert.Equal(t, int64(97), tickets[0].TicketID)
}

func TestReverseChronologicalStableOnTies(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		{TicketID: 1, CreatedAt: at},
		{TicketID: 2, CreatedAt: at},
		{TicketID: 3, CreatedAt: at},
	}

	got := ReverseChronological(tickets)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].TicketID, got[1].TicketID, got[2].TicketID})
}

func TestCountActive(t *testing.T) {
	// RESOLVED and CLOSED are settled; everything else needs attention
	assert.Equal(t, 2, CountActive(sampleTickets()))
	assert.Equal(t, 0, CountActive(nil))
}
