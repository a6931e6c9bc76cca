package services

import "fmt"

// NoProductsOrdered is reported by ProductTally.String when nothing was ordered.
const NoProductsOrdered = "No products ordered"

// ProductTally is the result of the most-ordered-product aggregation.
// Found is false when no order carries any item.
type ProductTally struct {
	Name  string
	Units int
	Found bool
}

// String renders the tally as "<name> (<units> units)" or NoProductsOrdered.
func (t ProductTally) String() string {
	if !t.Found {
		return NoProductsOrdered
	}
	return fmt.Sprintf("%s (%d units)", t.Name, t.Units)
}
