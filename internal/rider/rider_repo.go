package rider

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusCounts is the headline block of the admin dashboard.
type StatusCounts struct {
	Total    int64
	Active   int64
	Inactive int64
}

// CompanyGroup is one row of GROUP BY company_id; a nil CompanyID is the
// unassigned group.
type CompanyGroup struct {
	CompanyID *uuid.UUID
	Count     int64
}

//go:generate mockgen -source=rider_repo.go -destination=mock/rider_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, profile *RiderProfile) error
	FindAll(ctx context.Context) ([]RiderProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RiderProfile, error)
	Update(ctx context.Context, profile *RiderProfile) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
	GroupByCompany(ctx context.Context) ([]CompanyGroup, error)
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

func (r *repository) Create(ctx context.Context, profile *RiderProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) FindAll(ctx context.Context) ([]RiderProfile, error) {
	var profiles []RiderProfile
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*RiderProfile, error) {
	var profile RiderProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	return &profile, err
}

func (r *repository) Update(ctx context.Context, profile *RiderProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *repository) CountByStatus(ctx context.Context) (StatusCounts, error) {
	var counts StatusCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS active,
			COUNT(*) FILTER (WHERE status = ?) AS inactive
		FROM rider_profiles
	`, StatusActive, StatusInactive).Scan(&counts).Error
	return counts, err
}

func (r *repository) GroupByCompany(ctx context.Context) ([]CompanyGroup, error) {
	var groups []CompanyGroup
	err := r.db.WithContext(ctx).
		Model(&RiderProfile{}).
		Select("company_id, COUNT(*) AS count").
		Group("company_id").
		Scan(&groups).Error
	return groups, err
}
