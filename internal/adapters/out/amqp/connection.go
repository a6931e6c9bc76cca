package amqp

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const dialAttempts = 5

// Connection owns the broker connection and the channel refunds are published on.
type Connection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// Dial connects to url, retrying with a growing delay, and declares the
// notifications exchange.
func Dial(url string, logger *slog.Logger) (*Connection, error) {
	logger = logger.With("component", "amqp_connection")

	var err error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		var c *Connection
		if c, err = dial(url); err == nil {
			return c, nil
		}

		if attempt < dialAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			logger.Warn("RabbitMQ connection failed, retrying", "attempt", attempt, "wait", wait, "error", err)
			time.Sleep(wait)
		}
	}
	return nil, fmt.Errorf("connect to RabbitMQ after %d attempts: %w", dialAttempts, err)
}

func dial(url string) (*Connection, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	err = channel.ExchangeDeclare(
		NotificationsExchange,
		amqp091.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("declare %s exchange: %w", NotificationsExchange, err),
			channel.Close(),
			conn.Close(),
		)
	}

	return &Connection{conn: conn, channel: channel}, nil
}

// Channel returns the publishing channel.
func (c *Connection) Channel() *amqp091.Channel {
	return c.channel
}

// Close closes the channel and the connection.
func (c *Connection) Close() error {
	return errors.Join(c.channel.Close(), c.conn.Close())
}
