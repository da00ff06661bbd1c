package progress

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord is one dated entry of a rider's output. The ledger is
// append-only: records are never updated or deleted, and multiple records per
// rider per day are allowed.
type ProgressRecord struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	RiderProfileID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Date                time.Time `gorm:"type:timestamptz;not null;index"`
	DeliveriesCompleted int       `gorm:"not null;default:0"`
	HoursWorked         float64   `gorm:"not null;default:0"`
	Earnings            float64   `gorm:"not null;default:0"`
	CreatedAt           time.Time
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}
