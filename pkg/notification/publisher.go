// Package notification publishes best-effort messages about domain changes to the
// message broker. Publishing never fails the operation that triggered it.
package notification

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gatherhub/event-manager/pkg/model"
	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueEventCreated is the queue receiving one message per created event.
const QueueEventCreated = "event-created"

// AMQPChannel is the slice of the amqp091 channel the publisher uses.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error
}

func NewPublisher(logger *slog.Logger, channel AMQPChannel) *Publisher {
	return &Publisher{
		logger:  logger,
		channel: channel,
	}
}

type Publisher struct {
	logger  *slog.Logger
	channel AMQPChannel
}

type eventCreatedMessage struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
}

// EventCreated notifies the broker that event was stored. The contract is
// fire-and-forget: a broker failure is logged and otherwise ignored, the event itself is
// already durable.
func (p *Publisher) EventCreated(ctx context.Context, event model.Event) {
	body, err := json.Marshal(eventCreatedMessage{
		EventID:   event.EventID,
		EventName: event.EventName,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal event created notification", "eventId", event.EventID, "error", err)
		return
	}

	err = p.channel.PublishWithContext(ctx, "", QueueEventCreated, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish event created notification", "eventId", event.EventID, "error", err)
	}
}
