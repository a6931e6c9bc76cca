package fanout

import (
	"context"
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// Notifier implements ports.RefundNotifier by notifying every destination.
// Failures are joined; a failing destination does not stop the others.
type Notifier struct {
	destinations []ports.RefundNotifier
}

// NewNotifier creates a notifier over destinations, skipping nil ones.
func NewNotifier(destinations ...ports.RefundNotifier) *Notifier {
	n := &Notifier{}
	for _, d := range destinations {
		if d != nil {
			n.destinations = append(n.destinations, d)
		}
	}
	return n
}

func (n *Notifier) NotifyRefund(ctx context.Context, event order.RefundProcessedEvent) error {
	var errs []error
	for _, d := range n.destinations {
		if err := d.NotifyRefund(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
