package order_test

import (
	"testing"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Completed.Validate())
	require.NoError(t, order.Cancelled.Validate())

	err := order.Unknown.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "0 is not a valid status")
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		input    string
		expected order.Status
	}{
		{"Completed", order.Completed},
		{"completed", order.Completed},
		{"COMPLETED", order.Completed},
		{"Cancelled", order.Cancelled},
		{"cAnCeLlEd", order.Cancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			status, err := order.ParseStatus(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	t.Run("rejects unknown text", func(t *testing.T) {
		for _, input := range []string{"", "Unknown", "Canceled", " Completed"} {
			status, err := order.ParseStatus(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_Matches(t *testing.T) {
	assert.True(t, order.Cancelled.Matches("cancelled"))
	assert.True(t, order.Completed.Matches("COMPLETED"))
	assert.False(t, order.Completed.Matches("Cancelled"))
	assert.False(t, order.Completed.Matches("complete"))
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("Completed -> Cancelled", func(t *testing.T) {
		next, err := order.Completed.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("Cancelled -> Cancelled", func(t *testing.T) {
		next, err := order.Cancelled.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
		assert.True(t, next.IsTerminal())
	})

	t.Run("Unknown cannot be cancelled", func(t *testing.T) {
		next, err := order.Unknown.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Unknown, next)
	})
}
