package auth

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleRider = "rider"
)

// Credential is the login identity. Rider credentials carry a back-reference
// to their profile; the seeded admin has none. Credentials are never deleted
// and the role never changes after creation.
type Credential struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username       string     `gorm:"type:varchar(100);uniqueIndex:uq_credential_username;not null"`
	Password       string     `gorm:"type:varchar(255);not null"`
	Role           string     `gorm:"type:varchar(20);not null;default:'rider'"`
	RiderProfileID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Credential) TableName() string {
	return "credentials"
}
