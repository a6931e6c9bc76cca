// Package queries contains read-only operations over the tracked orders.
// Queries never change an order; they return views detached from the
// aggregates so callers cannot mutate state through them.
package queries

import (
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
)

// OrderReader is the read side of ports.OrderStore used by the query handlers.
type OrderReader interface {
	Get(id kernel.UUID) (*order.Order, error)
	Orders() []*order.Order
	OrdersByCustomer(name string) []*order.Order
	OrdersByStatus(status string) []*order.Order
	MostOrderedProduct() services.ProductTally
}
