// Package services provides domain services that work across many orders and
// so do not belong to the Order aggregate itself.
//
// The package includes:
//   - OrderManager: the growth-only collection of submitted orders together
//     with the customer/status filters, the most-ordered-product aggregation
//     and the order log rendering.
package services
