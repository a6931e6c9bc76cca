// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities, commands and queries so that zero values can be told apart from
// instances built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object was
// not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created by a constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type OrderItem struct {
//	    productName string
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewOrderItem(name string) OrderItem {
//	    return OrderItem{productName: name, guard: guard.NewConstructorGuard()}
//	}
//
//	func (i OrderItem) Validate() error {
//	    return i.guard.Validate(ErrOrderItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
