package queries

import (
	"context"
	"time"

	"ordertracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderLogSnapshotsQueryHandler reads archive metadata straight from the
// database without going through the domain model.
type GetOrderLogSnapshotsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderLogSnapshotsQueryHandler creates a handler on the archive database.
func NewGetOrderLogSnapshotsQueryHandler(db *gorm.DB) GetOrderLogSnapshotsQueryHandler {
	return GetOrderLogSnapshotsQueryHandler{db: db}
}

// Handle returns the snapshots ordered by save time, newest first.
func (h GetOrderLogSnapshotsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLogSnapshotsQuery,
) ([]GetOrderLogSnapshotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots := make([]GetOrderLogSnapshotsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			saved_at,
			order_count
		FROM order_log_snapshots
		ORDER BY saved_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			savedAt    time.Time
			orderCount int
		)
		if err = rows.Scan(&id, &savedAt, &orderCount); err != nil {
			return nil, err
		}

		snapshotID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		snapshots = append(snapshots, GetOrderLogSnapshotsQueryResponse{
			ID:         snapshotID,
			SavedAt:    savedAt.UTC(),
			OrderCount: orderCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
