package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcherFansOutInOrder(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(zap.NewNop())

	var order []string
	dispatcher.Subscribe(EventTicketRaised, func(_ context.Context, _ Event) error {
		order = append(order, "first")
		return nil
	})
	dispatcher.Subscribe(EventTicketRaised, func(_ context.Context, _ Event) error {
		order = append(order, "second")
		return nil
	})
	dispatcher.Subscribe(EventTicketStatusChanged, func(_ context.Context, _ Event) error {
		order = append(order, "other type")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTicketRaised}))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcherLogsHandlerErrorAndContinues(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	dispatcher := NewInMemoryDispatcher(zap.New(core))

	var reached bool
	dispatcher.Subscribe(EventUserBlockToggled, func(_ context.Context, _ Event) error {
		return errors.New("listener broke")
	})
	dispatcher.Subscribe(EventUserBlockToggled, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "evt-1", Type: EventUserBlockToggled})
	require.NoError(t, err, "a failing listener never fails the mutation")
	assert.True(t, reached, "remaining handlers still run")

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "user_block_toggled", entries[0].ContextMap()["event_type"])
	assert.Equal(t, "evt-1", entries[0].ContextMap()["event_id"])
}

func TestDispatcherNoSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(zap.NewNop())
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTicketRaised}))
}
