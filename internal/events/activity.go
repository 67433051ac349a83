package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterActivityLog subscribes a zap-backed listener for every mutation
// event so the console leaves an auditable trail of what it did.
func RegisterActivityLog(dispatcher Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}
	log := func(name string) EventHandler {
		return func(_ context.Context, event Event) error {
			logger.Info(name,
				zap.String("event_id", event.ID),
				zap.Int64("actor_id", event.Actor.UserID),
				zap.String("actor_role", string(event.Actor.Role)),
				zap.Any("payload", event.Payload))
			return nil
		}
	}
	dispatcher.Subscribe(EventTicketRaised, log("TicketRaised"))
	dispatcher.Subscribe(EventTicketStatusChanged, log("TicketStatusChanged"))
	dispatcher.Subscribe(EventUserBlockToggled, log("UserBlockToggled"))
}
