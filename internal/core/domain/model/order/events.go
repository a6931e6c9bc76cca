package order

import (
	"time"

	"ordertracker/internal/core/domain/model/customer"
	"ordertracker/internal/core/domain/model/kernel"
)

// DomainEvent is a fact recorded by the Order aggregate and published by the
// application layer once the operation that raised it has finished.
type DomainEvent interface {
	EventName() string
}

// RefundProcessedEventName identifies RefundProcessedEvent on the wire.
const RefundProcessedEventName = "order.refund_processed"

// RefundProcessedEvent is raised exactly once, when ProcessRefund moves an order
// from Completed to Cancelled.
type RefundProcessedEvent struct {
	OrderID    kernel.UUID
	Customer   customer.Customer
	Total      kernel.Money
	OccurredAt time.Time
}

// EventName implements DomainEvent.
func (e RefundProcessedEvent) EventName() string {
	return RefundProcessedEventName
}

// Message is the confirmation surfaced to the user.
func (e RefundProcessedEvent) Message() string {
	return "Refund processed for order of customer: " + e.Customer.Name()
}
