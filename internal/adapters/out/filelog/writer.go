// Package filelog writes the order log to a plain text file.
package filelog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
)

// DefaultPath is the file the order log is written to unless configured otherwise.
const DefaultPath = "order_logs.txt"

// Writer implements ports.OrderLogWriter by replacing the content of a file
// with the latest order log.
type Writer struct {
	path string
}

// NewWriter creates a writer for path; an empty path selects DefaultPath.
func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Path returns the file the writer targets.
func (w *Writer) Path() string {
	return w.path
}

// WriteOrderLog truncates the file and writes every entry in order.
// A cancelled context stops the write between entries.
func (w *Writer) WriteOrderLog(ctx context.Context, entries iter.Seq[string]) (err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("open order log %s: %w", w.path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close order log %s: %w", w.path, closeErr))
		}
	}()

	buf := bufio.NewWriter(f)
	for entry := range entries {
		if err = ctx.Err(); err != nil {
			return err
		}
		if _, err = buf.WriteString(entry); err != nil {
			return fmt.Errorf("write order log %s: %w", w.path, err)
		}
	}

	if err = buf.Flush(); err != nil {
		return fmt.Errorf("write order log %s: %w", w.path, err)
	}
	return nil
}
