package partnership

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=partnership_repo.go -destination=mock/partnership_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Partnership) error
	FindAll(ctx context.Context) ([]Partnership, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Partnership, error)
	GetByName(ctx context.Context, name string) (*Partnership, error)
	Update(ctx context.Context, p *Partnership) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Partnership) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Partnership, error) {
	var partnerships []Partnership
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&partnerships).Error
	return partnerships, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Partnership, error) {
	var p Partnership
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Partnership, error) {
	var p Partnership
	if err := r.db.WithContext(ctx).First(&p, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Partnership) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete reports gorm.ErrRecordNotFound when nothing matched so the service
// can map a missing id to 404.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Partnership{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
