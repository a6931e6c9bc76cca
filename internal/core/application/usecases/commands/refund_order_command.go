package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand asks for an order to be cancelled and refunded.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a refund request for the given order.
func NewRefundOrderCommand(orderID kernel.UUID) (RefundOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RefundOrderCommand{}, err
	}

	return RefundOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the order to refund.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
