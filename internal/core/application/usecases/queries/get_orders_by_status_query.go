package queries

import (
	"context"
	"errors"

	"ordertracker/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves the orders in a status given by name,
// e.g. "completed" or "Cancelled". Unknown names select nothing.
type GetOrdersByStatusQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates the query for status.
func NewGetOrdersByStatusQuery(status string) GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status name being searched for.
func (q GetOrdersByStatusQuery) Status() string {
	return q.status
}

// GetOrdersByStatusQueryHandler filters an OrderReader by status.
type GetOrdersByStatusQueryHandler struct {
	orders OrderReader
}

// NewGetOrdersByStatusQueryHandler creates a handler reading from orders.
func NewGetOrdersByStatusQueryHandler(orders OrderReader) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orders: orders}
}

// Handle returns the matching orders in submission order.
func (h GetOrdersByStatusQueryHandler) Handle(
	_ context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return newOrderViews(h.orders.OrdersByStatus(query.Status())), nil
}
