// Package rmq publishes order lifecycle events to RabbitMQ. Consumers such
// as push notification workers subscribe per status via the topic exchange.
package rmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
)

const exchangeName = "order.events"

// StatusChangedMessage is the wire payload for an order status transition.
type StatusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier implements ports.Notifier on a RabbitMQ topic exchange.
// Publishing is best effort: state changes are already committed when the
// notifier runs, so failures are logged and never propagated back into the
// business operation.
type Notifier struct {
	channel *amqp.Channel
	logger  *slog.Logger
}

// NewNotifier declares the order events exchange and returns a notifier
// publishing on the given channel.
func NewNotifier(conn *amqp.Connection, logger *slog.Logger) (*Notifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Notifier{
		channel: channel,
		logger:  logger,
	}, nil
}

// NotifyOrderStatusChanged publishes the transition keyed by status, for
// example "order.status.delivered".
func (n *Notifier) NotifyOrderStatusChanged(ctx context.Context, orderID kernel.UUID, status order.Status) {
	body, err := json.Marshal(StatusChangedMessage{
		OrderID:    orderID.String(),
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("failed to marshal status change",
			"order_id", orderID.String(), "error", err)
		return
	}

	routingKey := "order.status." + status.String()
	err = n.channel.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		n.logger.Error("failed to publish status change",
			"order_id", orderID.String(), "status", status.String(), "error", err)
		return
	}

	n.logger.Debug("published status change",
		"order_id", orderID.String(), "status", status.String())
}

// Close releases the channel. The connection belongs to the caller.
func (n *Notifier) Close() error {
	return n.channel.Close()
}
