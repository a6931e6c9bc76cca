package order

import (
	"errors"
	"fmt"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	// ErrInvalidItem is wrapped by every error returned from NewOrderItem, so
	// callers can reject a single line item and keep building the order.
	ErrInvalidItem = errors.New("order item is invalid")

	// ErrOrderItemIsNotConstructed is returned when a zero-value OrderItem is validated.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
)

// OrderItem is one product line of an order. It is immutable once built.
//
// Invariants:
//   - quantity >= 0
//   - unit price >= 0
//
// An empty product name is accepted.
type OrderItem struct { //nolint:recvcheck //using for validation
	productName string
	quantity    int
	unitPrice   kernel.Money
	guard       guard.ConstructorGuard
}

// NewOrderItem creates a validated line item.
//
// Parameters:
//   - productName: free text product name (may be empty)
//   - quantity: number of units, must not be negative
//   - unitPrice: price of one unit, must not be negative
//
// Returns:
//   - OrderItem: the item holding exactly the values passed in
//   - error: wraps ErrInvalidItem and the violated errs sentinel; when both
//     quantity and price are negative, both violations are reported
//
// Example:
//
//	price, _ := kernel.MoneyFromString("1.50")
//	item, err := order.NewOrderItem("Pen", 2, price)
//	if errors.Is(err, order.ErrInvalidItem) {
//	    // reject this line, keep the order open
//	}
func NewOrderItem(productName string, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	item := OrderItem{
		productName: productName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return OrderItem{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductName returns the product name of the line.
func (i OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity * unit price.
func (i OrderItem) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

// String renders the line as "<name> x<qty> @ <price>".
func (i OrderItem) String() string {
	return fmt.Sprintf("%s x%d @ %s", i.productName, i.quantity, i.unitPrice)
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is less than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
