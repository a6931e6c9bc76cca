// Package ports defines the contracts between the order tracking core and its
// adapters: the store of submitted orders, the refund notification sink and
// the order log destinations.
package ports

import (
	"iter"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
)

// OrderStore is the in-memory collection of submitted orders.
// services.OrderManager is the implementation used by the application.
type OrderStore interface {
	// AddOrder appends an order. Duplicates are kept.
	AddOrder(o *order.Order) error

	// Get returns the order with the given identifier or an
	// errs.ObjectNotFoundError.
	Get(id kernel.UUID) (*order.Order, error)

	// Orders returns every order in submission order.
	Orders() []*order.Order

	// OrdersByCustomer returns the orders of a customer, matching the name
	// case-insensitively.
	OrdersByCustomer(name string) []*order.Order

	// OrdersByStatus returns the orders whose status name matches
	// case-insensitively.
	OrdersByStatus(status string) []*order.Order

	// MostOrderedProduct returns the product with the largest ordered quantity.
	MostOrderedProduct() services.ProductTally

	// LogEntries yields the order log text block by block.
	LogEntries() iter.Seq[string]

	// Len returns the number of submitted orders.
	Len() int
}

var _ OrderStore = (*services.OrderManager)(nil)
