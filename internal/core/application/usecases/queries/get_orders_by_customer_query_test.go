package queries_test

import (
	"testing"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByCustomerQueryHandler_Handle(t *testing.T) {
	m := services.NewOrderManager()
	first := placeOrder(t, m, "Alice")
	placeOrder(t, m, "Bob")
	second := placeOrder(t, m, "alice")
	h := queries.NewGetOrdersByCustomerQueryHandler(m)

	query := queries.NewGetOrdersByCustomerQuery("ALICE")
	views, err := h.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, "ALICE", query.CustomerName())
	require.Len(t, views, 2)
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, second.ID(), views[1].ID)

	none, err := h.Handle(t.Context(), queries.NewGetOrdersByCustomerQuery("Carol"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetOrdersByCustomerQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewGetOrdersByCustomerQueryHandler(services.NewOrderManager())

	_, err := h.Handle(t.Context(), queries.GetOrdersByCustomerQuery{})

	assert.ErrorIs(t, err, queries.ErrGetOrdersByCustomerQueryIsNotConstructed)
}
