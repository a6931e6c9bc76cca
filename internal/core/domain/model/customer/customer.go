// Package customer provides the Customer value object that identifies who placed an order.
package customer

import (
	"errors"

	"ordertracker/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a zero-value Customer is validated.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an immutable (name, customer ID) pair. Identity is owned by the
// caller: two customers with the same ID are not merged and empty values are
// accepted.
//
// Example:
//
//	bob := customer.NewCustomer("Bob", "C1")
//	fmt.Println(bob) // Bob (ID: C1)
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	id    string
	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer. It never fails.
func NewCustomer(name, id string) Customer {
	return Customer{
		name:  name,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// ID returns the caller supplied customer identifier.
func (c Customer) ID() string {
	return c.id
}

// String renders the customer as "<name> (ID: <id>)".
func (c Customer) String() string {
	return c.name + " (ID: " + c.id + ")"
}
