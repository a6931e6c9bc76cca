package filelog_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"ordertracker/internal/adapters/out/filelog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter_DefaultPath(t *testing.T) {
	assert.Equal(t, "order_logs.txt", filelog.NewWriter("").Path())
	assert.Equal(t, "x.txt", filelog.NewWriter("x.txt").Path())
}

func TestWriter_WriteOrderLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	w := filelog.NewWriter(path)

	entries := []string{
		"Customer: Bob (ID: C1)\nStatus: Completed\nTotal: $0.00\n-------------------------\n",
		"Customer: Ann (ID: C2)\nStatus: Cancelled\nTotal: $0.00\n-------------------------\n",
	}
	require.NoError(t, w.WriteOrderLog(t.Context(), slices.Values(entries)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, entries[0]+entries[1], string(content))
}

func TestWriter_WriteOrderLog_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer"), 0o600))
	w := filelog.NewWriter(path)

	require.NoError(t, w.WriteOrderLog(t.Context(), slices.Values([]string{})))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestWriter_WriteOrderLog_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "orders.txt")
	w := filelog.NewWriter(path)

	err := w.WriteOrderLog(t.Context(), slices.Values([]string{"x"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriter_WriteOrderLog_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	w := filelog.NewWriter(filepath.Join(t.TempDir(), "orders.txt"))

	err := w.WriteOrderLog(ctx, slices.Values([]string{"x"}))

	assert.ErrorIs(t, err, context.Canceled)
}
