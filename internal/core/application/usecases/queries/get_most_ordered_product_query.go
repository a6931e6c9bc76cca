package queries

import (
	"context"
	"errors"

	"ordertracker/internal/pkg/guard"
)

var ErrGetMostOrderedProductQueryIsNotConstructed = errors.New(
	"GetMostOrderedProductQuery must be created via NewGetMostOrderedProductQuery constructor",
)

// GetMostOrderedProductQuery asks which product was ordered in the largest quantity.
type GetMostOrderedProductQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMostOrderedProductQuery creates the parameterless query.
func NewGetMostOrderedProductQuery() GetMostOrderedProductQuery {
	return GetMostOrderedProductQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMostOrderedProductQuery) Validate() error {
	return q.guard.Validate(ErrGetMostOrderedProductQueryIsNotConstructed)
}

// GetMostOrderedProductQueryResponse carries the aggregation result.
// Summary is "<product> (<units> units)" or "No products ordered" when Found is false.
type GetMostOrderedProductQueryResponse struct {
	Product string
	Units   int
	Found   bool
	Summary string
}

// GetMostOrderedProductQueryHandler aggregates over an OrderReader.
type GetMostOrderedProductQueryHandler struct {
	orders OrderReader
}

// NewGetMostOrderedProductQueryHandler creates a handler reading from orders.
func NewGetMostOrderedProductQueryHandler(orders OrderReader) GetMostOrderedProductQueryHandler {
	return GetMostOrderedProductQueryHandler{orders: orders}
}

// Handle runs the aggregation.
func (h GetMostOrderedProductQueryHandler) Handle(
	_ context.Context,
	query GetMostOrderedProductQuery,
) (GetMostOrderedProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMostOrderedProductQueryResponse{}, err
	}

	tally := h.orders.MostOrderedProduct()
	return GetMostOrderedProductQueryResponse{
		Product: tally.Name,
		Units:   tally.Units,
		Found:   tally.Found,
		Summary: tally.String(),
	}, nil
}
