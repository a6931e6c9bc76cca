package commands

import (
	"context"
	"fmt"

	"ordertracker/internal/core/ports"
)

// SaveOrderLogCommandHandler streams the rendered order log into a writer.
// Writer failures are returned, never swallowed.
type SaveOrderLogCommandHandler struct {
	orders OrderLogSource
	writer ports.OrderLogWriter
}

// NewSaveOrderLogCommandHandler creates a handler writing to writer.
func NewSaveOrderLogCommandHandler(orders OrderLogSource, writer ports.OrderLogWriter) SaveOrderLogCommandHandler {
	return SaveOrderLogCommandHandler{
		orders: orders,
		writer: writer,
	}
}

// Handle writes one entry per order in submission order.
func (h SaveOrderLogCommandHandler) Handle(ctx context.Context, cmd SaveOrderLogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.writer.WriteOrderLog(ctx, h.orders.LogEntries()); err != nil {
		return fmt.Errorf("save order log: %w", err)
	}
	return nil
}
