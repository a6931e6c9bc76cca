// Package order provides the Order aggregate of the order tracker together with
// its line items, status state machine and domain events.
//
// The package includes:
//   - OrderItem: a validated line item (product name, quantity, unit price)
//   - Status: the Completed -> Cancelled state machine
//   - Order: the aggregate root owning a customer, its items and its status
//   - RefundProcessedEvent: raised once when a refund cancels an order
//   - Trackable / Refundable: the capability contracts implemented by *Order
//
// Key business rules:
//   - Quantity and unit price of an item must be non-negative
//   - Orders start Completed; Cancelled is terminal and cancelling twice is a no-op
//   - A refund is all-or-nothing per order and never removes items
//   - Items may still be appended after cancellation
package order
