package kernel

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, ZeroMoney, MoneyFromString or MoneyFromFloat")

// Money is an exact decimal amount used for unit prices and order totals.
// Arithmetic is performed with github.com/shopspring/decimal, so sums such as
// 2*1.50 + 9.99 are exactly 12.99 rather than the nearest binary float.
//
// Money carries no currency; the tracker works in a single implicit currency
// and Format renders it with a "$" prefix.
//
// Example:
//
//	price, err := kernel.MoneyFromString("1.50")
//	if err != nil {
//	    return err
//	}
//	subtotal := price.Mul(2)
//	fmt.Println(subtotal.Format()) // $3.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps a decimal amount. Negative amounts are allowed here; callers
// that require non-negative values (OrderItem) enforce that rule themselves.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// ZeroMoney returns a constructed zero amount, the identity for Add.
func ZeroMoney() Money {
	return NewMoney(decimal.Zero)
}

// MoneyFromString parses a decimal literal such as "9.99" or "-3".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewMoney(amount), nil
}

// MoneyFromFloat converts a float64, as received from JSON payloads, into Money.
func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// Validate ensures the Money was created through one of its constructors.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal exposes the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Mul returns m multiplied by an integral quantity.
func (m Money) Mul(quantity int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 1.5 equals 1.50.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the shortest exact decimal form ("1.5", "9.99", "12").
func (m Money) String() string {
	return m.amount.String()
}

// Format renders the amount as currency with two fraction digits ("$12.99").
func (m Money) Format() string {
	return "$" + m.amount.StringFixed(2)
}
