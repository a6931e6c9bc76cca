package orderlogrepo

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderLogRepository implements ports.OrderLogWriter by archiving every
// saved order log as a new snapshot.
type GormOrderLogRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormOrderLogRepository creates a repository on db.
func NewGormOrderLogRepository(db *gorm.DB) *GormOrderLogRepository {
	return &GormOrderLogRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WriteOrderLog inserts the snapshot and its entries in one transaction.
// Earlier snapshots are kept.
func (r *GormOrderLogRepository) WriteOrderLog(ctx context.Context, entries iter.Seq[string]) error {
	snapshot := newSnapshot(uuid.New(), r.now(), slices.Collect(entries))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&snapshot).Error; err != nil {
			return err
		}
		if len(snapshot.Entries) == 0 {
			return nil
		}
		return tx.Create(&snapshot.Entries).Error
	})
	if err != nil {
		return fmt.Errorf("archive order log: %w", err)
	}
	return nil
}
