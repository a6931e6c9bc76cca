// Package fanout duplicates order log writes and refund notifications to several destinations.
package fanout

import (
	"context"
	"errors"
	"iter"
	"slices"

	"ordertracker/internal/core/ports"
)

// Writer implements ports.OrderLogWriter by writing the same entries to
// every destination. A failing destination does not stop the others; all
// failures are joined into the returned error.
type Writer struct {
	destinations []ports.OrderLogWriter
}

// NewWriter creates a writer over destinations, skipping nil ones.
func NewWriter(destinations ...ports.OrderLogWriter) *Writer {
	w := &Writer{}
	for _, d := range destinations {
		if d != nil {
			w.destinations = append(w.destinations, d)
		}
	}
	return w
}

// WriteOrderLog collects the entries once and replays them to each destination.
func (w *Writer) WriteOrderLog(ctx context.Context, entries iter.Seq[string]) error {
	collected := slices.Collect(entries)

	var errs []error
	for _, d := range w.destinations {
		if err := d.WriteOrderLog(ctx, slices.Values(collected)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
