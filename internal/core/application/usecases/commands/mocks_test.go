package commands_test

import (
	"context"
	"iter"
	"slices"
	"testing"

	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) AddOrder(o *order.Order) error {
	args := m.Called(o)
	return args.Error(0)
}

func (m *MockOrderStore) Get(id kernel.UUID) (*order.Order, error) {
	args := m.Called(id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) LogEntries() iter.Seq[string] {
	args := m.Called()
	return args.Get(0).(iter.Seq[string])
}

type MockRefundNotifier struct{ mock.Mock }

func (m *MockRefundNotifier) NotifyRefund(ctx context.Context, event order.RefundProcessedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockOrderLogWriter struct {
	mock.Mock
	written []string
}

func (m *MockOrderLogWriter) WriteOrderLog(ctx context.Context, entries iter.Seq[string]) error {
	m.written = slices.Collect(entries)
	args := m.Called(ctx)
	return args.Error(0)
}

func newItem(t *testing.T, product string, quantity int, price string) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(product, quantity, kernel.NewMoney(decimal.RequireFromString(price)))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, name string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customer.NewCustomer(name, "C1"))
	require.NoError(t, err)
	return o
}
