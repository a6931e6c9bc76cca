// Package orderlogrepo stores saved order logs in PostgreSQL through GORM.
package orderlogrepo

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderLogSnapshotDTO is one saved order log.
// Body is the complete text exactly as the file writer produces it.
type OrderLogSnapshotDTO struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	SavedAt    time.Time          `gorm:"type:timestamptz;not null;index"`
	OrderCount int                `gorm:"type:int;not null"`
	Body       string             `gorm:"type:text;not null"`
	Entries    []OrderLogEntryDTO `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_log_snapshot_dtos".
func (OrderLogSnapshotDTO) TableName() string {
	return "order_log_snapshots"
}

// OrderLogEntryDTO is one order block of a snapshot, separator included.
type OrderLogEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SnapshotID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"type:int;not null"`
	Body       string    `gorm:"type:text;not null"`
}

// TableName overrides GORM's default "order_log_entry_dtos".
func (OrderLogEntryDTO) TableName() string {
	return "order_log_entries"
}

func newSnapshot(id uuid.UUID, savedAt time.Time, entries []string) OrderLogSnapshotDTO {
	rows := make([]OrderLogEntryDTO, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, OrderLogEntryDTO{
			ID:         uuid.New(),
			SnapshotID: id,
			Position:   i + 1,
			Body:       entry,
		})
	}

	return OrderLogSnapshotDTO{
		ID:         id,
		SavedAt:    savedAt,
		OrderCount: len(entries),
		Body:       strings.Join(entries, ""),
		Entries:    rows,
	}
}
