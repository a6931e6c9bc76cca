// Package kernel provides the shared value objects of the order tracker domain.
//
// The package includes:
//   - UUID: identifier of orders and archived log snapshots
//   - Money: exact decimal amount for prices and totals
//
// Both are immutable and refuse to validate when used as zero values.
package kernel
