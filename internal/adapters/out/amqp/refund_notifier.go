// Package amqp publishes refund notifications to RabbitMQ.
//
// Every refund becomes one persistent JSON message on the durable fanout
// exchange "order_notifications"; consumers bind their own queues to it.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/order"

	"github.com/rabbitmq/amqp091-go"
)

const (
	// NotificationsExchange is the fanout exchange refunds are published to.
	NotificationsExchange = "order_notifications"

	publishTimeout = 10 * time.Second
)

// Publisher is the subset of *amqp091.Channel used by RefundNotifier.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RefundMessage is the JSON body of a refund notification.
type RefundMessage struct {
	Event        string    `json:"event"`
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	CustomerID   string    `json:"customer_id"`
	Total        string    `json:"total"`
	Message      string    `json:"message"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RefundNotifier implements ports.RefundNotifier on top of an AMQP channel.
type RefundNotifier struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewRefundNotifier creates a notifier publishing through publisher.
func NewRefundNotifier(publisher Publisher, logger *slog.Logger) *RefundNotifier {
	return &RefundNotifier{
		publisher: publisher,
		logger:    logger.With("component", "amqp_refund_notifier"),
	}
}

// NotifyRefund publishes the event to NotificationsExchange.
func (n *RefundNotifier) NotifyRefund(ctx context.Context, event order.RefundProcessedEvent) error {
	body, err := json.Marshal(newRefundMessage(event))
	if err != nil {
		return fmt.Errorf("marshal refund message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.publisher.PublishWithContext(ctx, NotificationsExchange, "", false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.EventName(),
		Body:         body,
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "Refund notification publish failed",
			"order_id", event.OrderID.String(), "error", err)
		return fmt.Errorf("publish refund notification: %w", err)
	}

	n.logger.DebugContext(ctx, "Refund notification published",
		"order_id", event.OrderID.String(), "size", len(body))
	return nil
}

func newRefundMessage(event order.RefundProcessedEvent) RefundMessage {
	return RefundMessage{
		Event:        event.EventName(),
		OrderID:      event.OrderID.String(),
		CustomerName: event.Customer.Name(),
		CustomerID:   event.Customer.ID(),
		Total:        event.Total.String(),
		Message:      event.Message(),
		OccurredAt:   event.OccurredAt,
	}
}
