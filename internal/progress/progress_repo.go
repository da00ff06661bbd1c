package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=progress_repo.go -destination=mock/progress_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, record *ProgressRecord) error
	FindByRider(ctx context.Context, riderID uuid.UUID) ([]ProgressRecord, error)
	SummarizeSince(ctx context.Context, riderID uuid.UUID, since time.Time) (ProgressSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, record *ProgressRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByRider(ctx context.Context, riderID uuid.UUID) ([]ProgressRecord, error) {
	var records []ProgressRecord
	err := r.db.WithContext(ctx).
		Where("rider_profile_id = ?", riderID).
		Order("date DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

// SummarizeSince computes the rolling window sums in SQL so the summary is a
// single consistent snapshot. COALESCE keeps an empty window at zero.
func (r *repository) SummarizeSince(ctx context.Context, riderID uuid.UUID, since time.Time) (ProgressSummary, error) {
	var summary ProgressSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(deliveries_completed), 0) AS total_deliveries,
			COALESCE(SUM(earnings), 0) AS total_earnings
		FROM progress_records
		WHERE rider_profile_id = ? AND date >= ?
	`, riderID, since).Scan(&summary).Error
	return summary, err
}
