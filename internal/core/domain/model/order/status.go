package order

import (
	"fmt"
	"strings"

	"ordertracker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Completed ──> Cancelled ──┐
//	                 ^        │
//	                 └────────┘
//	          (cancel is idempotent)
//
// Orders are recorded once the purchase is done, so the initial state is
// Completed. The only transition is a refund/cancellation.
type Status int

const (
	// Unknown represents an invalid or uninitialized status.
	Unknown Status = iota

	// Completed is the initial status of every recorded order.
	Completed

	// Cancelled is the terminal status reached through a refund.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// ParseStatus resolves the textual form of a status, ignoring case.
// "completed", "COMPLETED" and "Completed" all yield Completed.
//
// Returns:
//   - the matching Status
//   - a ValueIsInvalidError when the text names no valid status
func ParseStatus(text string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, text) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of Completed, Cancelled", text),
	)
}

// Validate checks that the status is Completed or Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "Completed", "Cancelled" or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Matches reports whether text is the case-insensitive name of this status.
func (s Status) Matches(text string) bool {
	return strings.EqualFold(s.String(), text)
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Cancelled
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Completed -> Cancelled
//   - Cancelled -> Cancelled (no-op)
//
// Returns an error only for invalid source statuses (Unknown).
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}
