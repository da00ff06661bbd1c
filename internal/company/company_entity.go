package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is a delivery brand riders can be assigned to. Companies are never
// deleted: profiles referencing one must stay resolvable forever.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);uniqueIndex:uq_company_name;not null"`
	LogoURL   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Company) TableName() string {
	return "companies"
}
