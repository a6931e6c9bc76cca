package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// RefundNotifier tells the outside world that a refund was processed.
type RefundNotifier interface {
	// NotifyRefund delivers one notification per processed refund.
	//
	// Example:
	//   if err := notifier.NotifyRefund(ctx, event); err != nil {
	//       return fmt.Errorf("notify refund: %w", err)
	//   }
	NotifyRefund(ctx context.Context, event order.RefundProcessedEvent) error
}
