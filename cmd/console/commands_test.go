package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

func TestTicketQueryNormalizes(t *testing.T) {
	query, err := ticketQuery("refund", "open")
	require.NoError(t, err)
	assert.Equal(t, "refund", query.SearchTerm)
	assert.Equal(t, "OPEN", query.Status)

	query, err = ticketQuery("", " all ")
	require.NoError(t, err)
	assert.Equal(t, viewmodel.StatusAll, query.Status)

	query, err = ticketQuery("", "")
	require.NoError(t, err)
	assert.Equal(t, viewmodel.StatusAll, query.Status)
}

func TestTicketQueryRejectsUnknownStatus(t *testing.T) {
	_, err := ticketQuery("", "ESCALATED")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
