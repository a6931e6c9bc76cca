package queries

import (
	"errors"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var ErrGetOrderLogSnapshotsQueryIsNotConstructed = errors.New(
	"GetOrderLogSnapshotsQuery must be created via NewGetOrderLogSnapshotsQuery constructor",
)

// GetOrderLogSnapshotsQuery lists the order logs archived in PostgreSQL,
// newest first. Only metadata is returned; archived logs are never loaded
// back into the order store.
//
// Example:
//
//	query := NewGetOrderLogSnapshotsQuery()
//	handler := NewGetOrderLogSnapshotsQueryHandler(db)
//
//	snapshots, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list archived order logs: %w", err)
//	}
//	for _, s := range snapshots {
//	    fmt.Printf("%s: %d orders\n", s.SavedAt.Format(time.RFC3339), s.OrderCount)
//	}
type GetOrderLogSnapshotsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderLogSnapshotsQuery creates the parameterless listing query.
func NewGetOrderLogSnapshotsQuery() GetOrderLogSnapshotsQuery {
	return GetOrderLogSnapshotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLogSnapshotsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLogSnapshotsQueryIsNotConstructed)
}

// GetOrderLogSnapshotsQueryResponse describes one archived order log.
type GetOrderLogSnapshotsQueryResponse struct {
	ID         kernel.UUID
	SavedAt    time.Time
	OrderCount int
}
