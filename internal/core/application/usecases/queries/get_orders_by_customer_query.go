package queries

import (
	"context"
	"errors"

	"ordertracker/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves the orders placed under a customer name.
// The name is matched case-insensitively; any string is accepted.
//
// Example:
//
//	query := NewGetOrdersByCustomerQuery("bob")
//	views, _ := NewGetOrdersByCustomerQueryHandler(manager).Handle(ctx, query)
//	for i, view := range views {
//	    fmt.Printf("Order #%d\n%s", i+1, view.Rendered)
//	}
type GetOrdersByCustomerQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates the query for customerName.
func NewGetOrdersByCustomerQuery(customerName string) GetOrdersByCustomerQuery {
	return GetOrdersByCustomerQuery{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerName returns the name being searched for.
func (q GetOrdersByCustomerQuery) CustomerName() string {
	return q.customerName
}

// GetOrdersByCustomerQueryHandler filters an OrderReader by customer name.
type GetOrdersByCustomerQueryHandler struct {
	orders OrderReader
}

// NewGetOrdersByCustomerQueryHandler creates a handler reading from orders.
func NewGetOrdersByCustomerQueryHandler(orders OrderReader) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{orders: orders}
}

// Handle returns the matching orders in submission order.
func (h GetOrdersByCustomerQueryHandler) Handle(
	_ context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return newOrderViews(h.orders.OrdersByCustomer(query.CustomerName())), nil
}
