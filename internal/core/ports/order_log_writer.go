package ports

import (
	"context"
	"iter"
)

// OrderLogWriter persists a dump of the order log.
//
// Entries are the rendered orders, each already followed by the separator
// line, in submission order. An implementation must consume the sequence at
// most once and must return every I/O failure to the caller.
type OrderLogWriter interface {
	WriteOrderLog(ctx context.Context, entries iter.Seq[string]) error
}
