package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cred *Credential) error
	GetByUsername(ctx context.Context, username string) (*Credential, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Credential, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Credential, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	LinkRiderProfile(ctx context.Context, credentialID, riderProfileID uuid.UUID) error
	FindFirstByRole(ctx context.Context, role string) (*Credential, error)
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

func (r *repository) Create(ctx context.Context, cred *Credential) error {
	return r.db.WithContext(ctx).Create(cred).Error
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&cred).Error
	return &cred, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).First(&cred, "id = ?", id).Error
	return &cred, err
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Credential, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var creds []Credential
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&creds).Error
	return creds, err
}

func (r *repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Credential{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) LinkRiderProfile(ctx context.Context, credentialID, riderProfileID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Credential{}).
		Where("id = ?", credentialID).
		Update("rider_profile_id", riderProfileID).Error
}

func (r *repository) FindFirstByRole(ctx context.Context, role string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).Where("role = ?", role).First(&cred).Error
	return &cred, err
}
