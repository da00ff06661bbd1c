package partnership

import (
	"time"

	"github.com/google/uuid"
)

// Partnership is a partner-company card shown on the public site.
type Partnership struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_partnership_name"`
	URL       string    `gorm:"type:text"`
	LogoURL   string    `gorm:"type:text"`
	Visible   bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Partnership) TableName() string {
	return "partnerships"
}
