package commands

import (
	"context"
	"errors"
	"fmt"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// RefundOrderCommandHandler cancels an order through its refund transition and
// publishes the resulting RefundProcessedEvent.
//
// Refunding an order that is already Cancelled changes nothing and publishes
// nothing.
//
// Example:
//
//	handler := NewRefundOrderCommandHandler(manager, console.NewRefundNotifier(os.Stdout))
//	cmd, _ := NewRefundOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// stdout: Refund processed for order of customer: Bob
type RefundOrderCommandHandler struct {
	orders   OrderFinder
	notifier ports.RefundNotifier
}

// NewRefundOrderCommandHandler creates a handler publishing through notifier.
func NewRefundOrderCommandHandler(orders OrderFinder, notifier ports.RefundNotifier) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		orders:   orders,
		notifier: notifier,
	}
}

// Handle refunds the order.
//
// Returns:
//   - error: the lookup error (errs.ErrObjectNotFound) or the joined
//     notification failures; the order stays Cancelled even when
//     notification fails
func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orders.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.ProcessRefund() {
		return nil
	}

	var notifyErrs []error
	for _, event := range o.PullDomainEvents() {
		refund, ok := event.(order.RefundProcessedEvent)
		if !ok {
			continue
		}
		if err = h.notifier.NotifyRefund(ctx, refund); err != nil {
			notifyErrs = append(notifyErrs, fmt.Errorf("notify refund of order %s: %w", refund.OrderID, err))
		}
	}

	return errors.Join(notifyErrs...)
}
