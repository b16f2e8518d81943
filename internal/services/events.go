package services

import (
	"grubdash/pkg/rabbitmq"

	"go.uber.org/zap"
)

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	Publish(event rabbitmq.Event) error
}

// publish sends an event when a publisher is configured. Failures are logged and swallowed.
func publish(events EventPublisher, log *zap.Logger, name, id string, data any) {
	if events == nil {
		return
	}
	if err := events.Publish(rabbitmq.NewEvent(name, id, data)); err != nil {
		log.Warn("failed to publish event", zap.String("event", name), zap.String("id", id), zap.Error(err))
		return
	}
	log.Debug("event published", zap.String("event", name), zap.String("id", id))
}
