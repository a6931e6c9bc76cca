package order

import (
	"errors"
	"strings"
	"sync"
	"time"

	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Trackable is implemented by anything exposing an order lifecycle status.
type Trackable interface {
	Status() Status
}

// Refundable is implemented by anything that can be refunded as a whole.
// ProcessRefund reports whether the call performed the refund.
type Refundable interface {
	ProcessRefund() bool
}

var (
	_ Trackable  = (*Order)(nil)
	_ Refundable = (*Order)(nil)
)

// Order is the aggregate root of the tracker: one customer's purchase made of
// an ordered list of line items and a status.
//
// Order follows these invariants:
//   - Status starts as Completed and, once Cancelled, never reverts
//   - Items keep their insertion order and are never removed
//   - The total is always the exact sum of quantity * unit price
//
// An Order guards its own state with a RWMutex, so it can be shared between
// the HTTP, MCP and scheduled-job goroutines of the application.
type Order struct {
	mu sync.RWMutex

	// id addresses the order from the outer adapters
	id kernel.UUID

	// customer who placed the order
	customer customer.Customer

	// items in insertion order
	items []OrderItem

	// status in the Completed -> Cancelled lifecycle
	status Status

	// events raised since the last PullDomainEvents call
	events []DomainEvent

	isConstructed bool
}

// NewOrder opens an empty order for a customer in Completed status.
//
// Parameters:
//   - id: identifier of the order (must be a valid UUID)
//   - c: the customer placing the order (must be built with customer.NewCustomer)
//
// Returns:
//   - *Order: the new order with no items
//   - error: joined validation errors of id and customer
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customer.NewCustomer("Bob", "C1"))
//	if err != nil {
//	    return err
//	}
//	_ = o.AddItem(pen)
func NewOrder(id kernel.UUID, c customer.Customer) (*Order, error) {
	if err := errors.Join(id.Validate(), c.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customer:      c,
		items:         make([]OrderItem, 0),
		status:        Completed,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer who placed the order.
func (o *Order) Customer() customer.Customer {
	return o.customer
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	o.mu.RLock()
	defer o.mu.RUnlock()

	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.status
}

// AddItem appends a line item.
//
// The status is not checked: items can be appended to a Cancelled order.
// Only items that were not built by NewOrderItem are rejected.
func (o *Order) AddItem(item OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.items = append(o.items, item)
	return nil
}

// Total returns the sum of quantity * unit price over all items.
// An order without items totals exactly zero.
func (o *Order) Total() kernel.Money {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.totalLocked()
}

// Cancel moves the order to Cancelled. Cancelling a Cancelled order is a no-op.
func (o *Order) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.cancelLocked()
}

// ProcessRefund cancels a Completed order and records a RefundProcessedEvent.
//
// Returns:
//   - true when the refund was performed
//   - false when the order was already Cancelled (no transition, no event)
//
// Example:
//
//	if o.ProcessRefund() {
//	    for _, event := range o.PullDomainEvents() {
//	        publish(event)
//	    }
//	}
func (o *Order) ProcessRefund() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.cancelLocked() {
		return false
	}

	o.events = append(o.events, RefundProcessedEvent{
		OrderID:    o.id,
		Customer:   o.customer,
		Total:      o.totalLocked(),
		OccurredAt: time.Now().UTC(),
	})
	return true
}

// PullDomainEvents returns the events raised since the previous call and forgets them.
func (o *Order) PullDomainEvents() []DomainEvent {
	o.mu.Lock()
	defer o.mu.Unlock()

	events := o.events
	o.events = nil
	return events
}

// Render returns the deterministic multi-line description of the order:
//
//	Customer: Bob (ID: C1)
//	- Pen x2 @ 1.5
//	- Book x1 @ 9.99
//	Status: Completed
//	Total: $12.99
//
// The same text is used for display and for the order log.
func (o *Order) Render() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("Customer: ")
	sb.WriteString(o.customer.String())
	sb.WriteString("\n")
	for _, item := range o.items {
		sb.WriteString("- ")
		sb.WriteString(item.String())
		sb.WriteString("\n")
	}
	sb.WriteString("Status: ")
	sb.WriteString(o.status.String())
	sb.WriteString("\nTotal: ")
	sb.WriteString(o.totalLocked().Format())
	sb.WriteString("\n")
	return sb.String()
}

// String implements fmt.Stringer with Render.
func (o *Order) String() string {
	return o.Render()
}

func (o *Order) totalLocked() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) cancelLocked() bool {
	if o.status.IsTerminal() {
		return false
	}

	next, err := o.status.Cancel()
	if err != nil {
		return false
	}
	o.status = next
	return true
}
