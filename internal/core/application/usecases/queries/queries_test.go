package queries_test

import (
	"testing"

	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type line struct {
	product  string
	quantity int
	price    string
}

func placeOrder(t *testing.T, m *services.OrderManager, name string, lines ...line) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), customer.NewCustomer(name, name+"-id"))
	require.NoError(t, err)
	for _, l := range lines {
		item, err := order.NewOrderItem(l.product, l.quantity, kernel.NewMoney(decimal.RequireFromString(l.price)))
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))
	}
	require.NoError(t, m.AddOrder(o))
	return o
}
