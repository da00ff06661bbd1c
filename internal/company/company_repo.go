package company

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, company *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	Update(ctx context.Context, company *Company) error
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

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Order("name ASC").Find(&companies).Error
	return companies, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	return &company, err
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var companies []Company
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error
	return companies, err
}

func (r *repository) GetByName(ctx context.Context, name string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&company).Error
	return &company, err
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}
