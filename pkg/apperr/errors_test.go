package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "nope", New(KindValidation, "nope", nil).Error())

	wrapped := NewFetch("failed to list tickets", errors.New("connection refused"))
	assert.Equal(t, "failed to list tickets: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewUpdate("failed to update status", cause)
	assert.ErrorIs(t, err, cause)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(NewPermission("denied"), KindPermission))
	assert.False(t, IsKind(NewPermission("denied"), KindValidation))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
	assert.False(t, IsKind(nil, KindInternal))

	// kinds survive wrapping
	err := fmt.Errorf("context: %w", NewAuth("login failed", nil))
	assert.True(t, IsKind(err, KindAuth))
}

func TestAs(t *testing.T) {
	assert.Nil(t, As(nil))

	appErr := As(NewValidation("bad input", map[string]any{"subject": "required"}))
	require.NotNil(t, appErr)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, "required", appErr.Details["subject"])

	// unknown errors are normalized to internal with the cause preserved
	cause := errors.New("boom")
	appErr = As(cause)
	require.NotNil(t, appErr)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.ErrorIs(t, appErr, cause)
}

func TestNotFound(t *testing.T) {
	err := NewNotFound("ticket")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "ticket not found", err.Error())
}
