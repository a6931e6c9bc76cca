package services_test

import (
	"strings"
	"sync"
	"testing"

	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	product  string
	quantity int
	price    string
}

func placeOrder(t *testing.T, m *services.OrderManager, name, id string, lines ...line) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), customer.NewCustomer(name, id))
	require.NoError(t, err)
	for _, l := range lines {
		item, err := order.NewOrderItem(l.product, l.quantity, kernel.NewMoney(decimal.RequireFromString(l.price)))
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))
	}
	require.NoError(t, m.AddOrder(o))
	return o
}

func TestOrderManager_AddOrder(t *testing.T) {
	t.Run("should keep submission order and allow duplicates", func(t *testing.T) {
		m := services.NewOrderManager()
		first := placeOrder(t, m, "Ann", "1")
		second := placeOrder(t, m, "Ben", "2")
		require.NoError(t, m.AddOrder(first))

		orders := m.Orders()

		require.Len(t, orders, 3)
		assert.Same(t, first, orders[0])
		assert.Same(t, second, orders[1])
		assert.Same(t, first, orders[2])
		assert.Equal(t, 3, m.Len())
	})

	t.Run("should reject unconstructed orders", func(t *testing.T) {
		m := services.NewOrderManager()

		err := m.AddOrder(&order.Order{})

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Zero(t, m.Len())
	})
}

func TestOrderManager_Get(t *testing.T) {
	m := services.NewOrderManager()
	o := placeOrder(t, m, "Ann", "1")

	found, err := m.Get(o.ID())
	require.NoError(t, err)
	assert.Same(t, o, found)

	_, err = m.Get(kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderManager_OrdersByCustomer(t *testing.T) {
	m := services.NewOrderManager()
	a := placeOrder(t, m, "Alice", "1")
	placeOrder(t, m, "Bob", "2")
	b := placeOrder(t, m, "ALICE", "3")

	t.Run("should match names case-insensitively", func(t *testing.T) {
		got := m.OrdersByCustomer("alice")

		require.Len(t, got, 2)
		assert.Same(t, a, got[0])
		assert.Same(t, b, got[1])
	})

	t.Run("should require the whole name to match", func(t *testing.T) {
		assert.Empty(t, m.OrdersByCustomer("Ali"))
	})

	t.Run("should return an empty non-nil slice", func(t *testing.T) {
		got := m.OrdersByCustomer("nobody")

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestOrderManager_OrdersByStatus(t *testing.T) {
	m := services.NewOrderManager()
	completed := placeOrder(t, m, "Ann", "1")
	cancelled := placeOrder(t, m, "Ben", "2")
	cancelled.Cancel()

	assert.Equal(t, []*order.Order{completed}, m.OrdersByStatus("completed"))
	assert.Equal(t, []*order.Order{cancelled}, m.OrdersByStatus("CANCELLED"))
	assert.Empty(t, m.OrdersByStatus("shipped"))
}

func TestOrderManager_MostOrderedProduct(t *testing.T) {
	t.Run("should report the sentinel without orders", func(t *testing.T) {
		m := services.NewOrderManager()

		tally := m.MostOrderedProduct()

		assert.False(t, tally.Found)
		assert.Equal(t, "No products ordered", tally.String())
	})

	t.Run("should report the sentinel when no order has items", func(t *testing.T) {
		m := services.NewOrderManager()
		placeOrder(t, m, "Ann", "1")

		assert.Equal(t, services.NoProductsOrdered, m.MostOrderedProduct().String())
	})

	t.Run("should sum units across orders", func(t *testing.T) {
		m := services.NewOrderManager()
		placeOrder(t, m, "Ann", "1", line{"Widget", 3, "1"}, line{"Gadget", 5, "1"})
		placeOrder(t, m, "Ben", "2", line{"Widget", 4, "1"})

		tally := m.MostOrderedProduct()

		assert.Equal(t, services.ProductTally{Name: "Widget", Units: 7, Found: true}, tally)
		assert.Equal(t, "Widget (7 units)", tally.String())
	})

	t.Run("should count cancelled orders", func(t *testing.T) {
		m := services.NewOrderManager()
		placeOrder(t, m, "Ann", "1", line{"Widget", 1, "1"})
		cancelled := placeOrder(t, m, "Ben", "2", line{"Gadget", 5, "1"})
		cancelled.ProcessRefund()

		assert.Equal(t, "Gadget (5 units)", m.MostOrderedProduct().String())
	})

	t.Run("should break ties by smallest name", func(t *testing.T) {
		m := services.NewOrderManager()
		placeOrder(t, m, "Ann", "1", line{"Zeta", 2, "1"}, line{"Alpha", 2, "1"}, line{"Mid", 1, "1"})

		assert.Equal(t, "Alpha (2 units)", m.MostOrderedProduct().String())
	})

	t.Run("should report a product ordered with zero units", func(t *testing.T) {
		m := services.NewOrderManager()
		placeOrder(t, m, "Ann", "1", line{"Sample", 0, "0"})

		assert.Equal(t, "Sample (0 units)", m.MostOrderedProduct().String())
	})
}

func TestOrderManager_LogEntries(t *testing.T) {
	t.Run("should yield nothing without orders", func(t *testing.T) {
		m := services.NewOrderManager()

		count := 0
		for range m.LogEntries() {
			count++
		}
		assert.Zero(t, count)
	})

	t.Run("should render every order followed by the separator", func(t *testing.T) {
		m := services.NewOrderManager()
		a := placeOrder(t, m, "Ann", "1", line{"Tea", 1, "2"})
		b := placeOrder(t, m, "Ben", "2")

		var sb strings.Builder
		for entry := range m.LogEntries() {
			sb.WriteString(entry)
		}

		assert.Equal(t, a.Render()+"-------------------------\n"+b.Render()+services.LogSeparator, sb.String())
	})

	t.Run("should stop when the consumer stops", func(t *testing.T) {
		m := services.NewOrderManager()
		placeOrder(t, m, "Ann", "1")
		placeOrder(t, m, "Ben", "2")

		count := 0
		for range m.LogEntries() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}

func TestOrderManager_ConcurrentAccess(t *testing.T) {
	m := services.NewOrderManager()

	errCh := make(chan error, 50)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errCh <- addWidgetOrder(m, i)
		}()
		go func() {
			defer wg.Done()
			_ = m.MostOrderedProduct()
			_ = m.OrdersByCustomer("ann")
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
	assert.Equal(t, 50, m.Len())
	assert.Equal(t, "Widget (1225 units)", m.MostOrderedProduct().String())
}

func addWidgetOrder(m *services.OrderManager, units int) error {
	o, err := order.NewOrder(kernel.NewUUID(), customer.NewCustomer("Ann", "1"))
	if err != nil {
		return err
	}
	item, err := order.NewOrderItem("Widget", units, kernel.NewMoney(decimal.NewFromInt(1)))
	if err != nil {
		return err
	}
	if err = o.AddItem(item); err != nil {
		return err
	}
	return m.AddOrder(o)
}
