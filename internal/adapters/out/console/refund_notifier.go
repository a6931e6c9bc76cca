// Package console prints refund notifications for the interactive driver.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"ordertracker/internal/core/domain/model/order"
)

// RefundNotifier writes one "Refund processed for order of customer: <name>"
// line per refund to an io.Writer.
type RefundNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRefundNotifier creates a notifier writing to out, usually os.Stdout.
func NewRefundNotifier(out io.Writer) *RefundNotifier {
	return &RefundNotifier{out: out}
}

// NotifyRefund prints the event message.
func (n *RefundNotifier) NotifyRefund(_ context.Context, event order.RefundProcessedEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintln(n.out, event.Message()); err != nil {
		return fmt.Errorf("print refund notification: %w", err)
	}
	return nil
}
