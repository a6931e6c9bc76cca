package commands

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler opens a Completed order, appends the items in
// entry order and hands the order to the store.
type PlaceOrderCommandHandler struct {
	orders OrderAdder
}

// NewPlaceOrderCommandHandler creates a handler that records orders in orders.
func NewPlaceOrderCommandHandler(orders OrderAdder) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{orders: orders}
}

// Handle builds the order and adds it to the store.
// Nothing is stored when any step fails.
func (h PlaceOrderCommandHandler) Handle(_ context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Customer())
	if err != nil {
		return err
	}

	for _, item := range cmd.Items() {
		if err = o.AddItem(item); err != nil {
			return err
		}
	}

	return h.orders.AddOrder(o)
}
