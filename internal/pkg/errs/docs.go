// Package errs provides the standardized error types of the order tracker.
//
// Every type follows the same shape:
//   - a sentinel error variable (ErrValueIsInvalid, ErrObjectNotFound, ...)
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so callers classify failures with errors.Is
//
// Domain packages build on these types; adapters map the sentinels onto
// transport specific responses (HTTP status codes, MCP error codes, CLI messages).
package errs
