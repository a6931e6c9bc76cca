package services

import (
	"iter"
	"strings"
	"sync"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// LogSeparator terminates every order block of the order log.
const LogSeparator = "-------------------------\n"

// OrderManager keeps every submitted order in submission order and answers
// the aggregate questions asked about them.
//
// Business rules:
//   - Orders are only ever appended, never removed or deduplicated
//   - Customer and status filters compare case-insensitively and keep submission order
//   - Cancelled orders still count towards the most ordered product
//
// The manager is safe for concurrent use. Writers are exclusive; readers copy
// the order list under a read lock and work on that snapshot.
//
// Example usage:
//
//	manager := services.NewOrderManager()
//	_ = manager.AddOrder(o)
//	for _, o := range manager.OrdersByCustomer("bob") {
//	    fmt.Print(o.Render())
//	}
//	fmt.Println(manager.MostOrderedProduct())
type OrderManager struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewOrderManager creates an empty OrderManager.
func NewOrderManager() *OrderManager {
	return &OrderManager{orders: make([]*order.Order, 0)}
}

// AddOrder appends an order. The same order may be added more than once.
//
// Returns:
//   - error: order.ErrOrderIsNotConstructed if o was not built by order.NewOrder
func (m *OrderManager) AddOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = append(m.orders, o)
	return nil
}

// Get returns the first order with the given identifier.
//
// Returns:
//   - *order.Order: the order
//   - error: *errs.ObjectNotFoundError when no such order was submitted
func (m *OrderManager) Get(id kernel.UUID) (*order.Order, error) {
	for _, o := range m.snapshot() {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

// Orders returns all orders in submission order.
func (m *OrderManager) Orders() []*order.Order {
	return m.snapshot()
}

// Len returns the number of submitted orders.
func (m *OrderManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.orders)
}

// OrdersByCustomer returns the orders whose customer name equals name,
// ignoring case. The result is empty, never nil, when nothing matches.
func (m *OrderManager) OrdersByCustomer(name string) []*order.Order {
	return m.filter(func(o *order.Order) bool {
		return strings.EqualFold(o.Customer().Name(), name)
	})
}

// OrdersByStatus returns the orders whose status name equals status,
// ignoring case. Unknown status names simply match nothing.
func (m *OrderManager) OrdersByStatus(status string) []*order.Order {
	return m.filter(func(o *order.Order) bool {
		return o.Status().Matches(status)
	})
}

// MostOrderedProduct sums item quantities per product name across all
// orders and returns the product with the largest total.
//
// Ties are broken by the lexicographically smallest product name, so the
// answer does not depend on submission order. When no order has items the
// tally is not Found and renders as NoProductsOrdered.
//
// Example:
//
//	// A: Widget x3, Gadget x1   B: Widget x4
//	manager.MostOrderedProduct().String() // "Widget (7 units)"
func (m *OrderManager) MostOrderedProduct() ProductTally {
	units := make(map[string]int)
	for _, o := range m.snapshot() {
		for _, item := range o.Items() {
			units[item.ProductName()] += item.Quantity()
		}
	}

	var best ProductTally
	for name, n := range units {
		if !best.Found || n > best.Units || (n == best.Units && name < best.Name) {
			best = ProductTally{Name: name, Units: n, Found: true}
		}
	}
	return best
}

// LogEntries yields, for every order in submission order, its rendering
// followed by LogSeparator. The orders are snapshotted when iteration starts.
func (m *OrderManager) LogEntries() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, o := range m.snapshot() {
			if !yield(o.Render() + LogSeparator) {
				return
			}
		}
	}
}

func (m *OrderManager) snapshot() []*order.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]*order.Order, len(m.orders))
	copy(orders, m.orders)
	return orders
}

func (m *OrderManager) filter(match func(*order.Order) bool) []*order.Order {
	result := make([]*order.Order, 0)
	for _, o := range m.snapshot() {
		if match(o) {
			result = append(result, o)
		}
	}
	return result
}
