package commands

import (
	"errors"
	"fmt"

	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer submitting an order made of
// already validated line items. An order without items is allowed.
//
// Example:
//
//	pen, _ := order.NewOrderItem("Pen", 2, price)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customer.NewCustomer("Bob", "C1"), []order.OrderItem{pen})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(manager)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer customer.Customer
	items    []order.OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the order identifier, the customer and every item.
// All violations are reported together.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	c customer.Customer,
	items []order.OrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(c),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer placing the order.
func (c PlaceOrderCommand) Customer() customer.Customer {
	return c.customer
}

// Items returns a copy of the line items in entry order.
func (c PlaceOrderCommand) Items() []order.OrderItem {
	items := make([]order.OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(cust customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}

	c.customer = cust
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.OrderItem) error {
	var errs []error
	for i, item := range items {
		if err := item.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.items = make([]order.OrderItem, len(items))
	copy(c.items, items)
	return nil
}
