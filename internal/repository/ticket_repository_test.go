package repository

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/config"
	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// countingTransport serves canned responses and counts round trips, so a
// test can assert that a request was (or was not) sent at all.
type countingTransport struct {
	calls  atomic.Int64
	status int
	body   string

	lastMethod string
	lastPath   string
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls.Add(1)
	t.lastMethod = req.Method
	t.lastPath = req.URL.Path
	status := t.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(t.body)),
	}, nil
}

func newTestRepo(t *testing.T, transport *countingTransport) TicketRepository {
	t.Helper()
	api := apiclient.New(
		config.APIConfig{BaseURL: "http://backend.test"},
		zap.NewNop(),
		apiclient.WithHTTPClient(&http.Client{Transport: transport}),
	)
	return NewTicketRepository(api)
}

func TestCreateRejectsIncompleteDraftLocally(t *testing.T) {
	transport := &countingTransport{}
	repo := newTestRepo(t, transport)

	tests := []domain.TicketDraft{
		{Subject: "", Description: "details"},
		{Subject: "subject", Description: ""},
		{Subject: "   ", Description: "\t\n"},
	}
	for _, draft := range tests {
		_, err := repo.Create(context.Background(), draft)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation), "draft %+v", draft)
	}

	// local validation must not cost a round trip
	assert.Equal(t, int64(0), transport.calls.Load())
}

func TestCreateDefaultsPriorityToLow(t *testing.T) {
	transport := &countingTransport{body: `{"ticketId":100,"subject":"Lost luggage","status":"OPEN","priority":"LOW"}`}
	repo := newTestRepo(t, transport)

	created, err := repo.Create(context.Background(), domain.TicketDraft{
		Subject:     "Lost luggage",
		Description: "Bag never arrived",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.TicketID)
	assert.Equal(t, http.MethodPost, transport.lastMethod)
	assert.Equal(t, "/api/support", transport.lastPath)
}

func TestCreateRejectsUnknownPriority(t *testing.T) {
	transport := &countingTransport{}
	repo := newTestRepo(t, transport)

	_, err := repo.Create(context.Background(), domain.TicketDraft{
		Subject:     "s",
		Description: "d",
		Priority:    "URGENT",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, int64(0), transport.calls.Load())
}

func TestCreateWrapsBackendFailureAsUpdate(t *testing.T) {
	transport := &countingTransport{status: http.StatusInternalServerError, body: `{"error":{"code":"INTERNAL","message":"boom"}}`}
	repo := newTestRepo(t, transport)

	_, err := repo.Create(context.Background(), domain.TicketDraft{Subject: "s", Description: "d"})
	assert.True(t, apperr.IsKind(err, apperr.KindUpdate))
}

func TestListForUserCoercesEmptyBody(t *testing.T) {
	transport := &countingTransport{body: `null`}
	repo := newTestRepo(t, transport)

	tickets, err := repo.ListForUser(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, tickets)
	assert.Empty(t, tickets)
	assert.Equal(t, "/api/support/user/3", transport.lastPath)
}

func TestListAllWrapsFailureAsFetch(t *testing.T) {
	transport := &countingTransport{status: http.StatusInternalServerError, body: `{}`}
	repo := newTestRepo(t, transport)

	_, err := repo.ListAll(context.Background())
	assert.True(t, apperr.IsKind(err, apperr.KindFetch))
}

func TestUpdateStatusValidatesEnumOnly(t *testing.T) {
	transport := &countingTransport{}
	repo := newTestRepo(t, transport)

	_, err := repo.UpdateStatus(context.Background(), 42, "ARCHIVED")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, int64(0), transport.calls.Load())
}

func TestUpdateStatusHitsStatusEndpoint(t *testing.T) {
	transport := &countingTransport{body: `{"ticketId":42,"status":"RESOLVED"}`}
	repo := newTestRepo(t, transport)

	// no transition graph on this side: CLOSED back to OPEN goes through too
	updated, err := repo.UpdateStatus(context.Background(), 42, domain.TicketStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	assert.Equal(t, http.MethodPut, transport.lastMethod)
	assert.Equal(t, "/api/support/42/status/RESOLVED", transport.lastPath)
}
