package rider

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "On Leave"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}

// RiderProfile is one delivery worker. CompanyID is the current assignment
// and may be null (unassigned). Profiles are never deleted.
type RiderProfile struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CredentialID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	FullName      string     `gorm:"type:varchar(150);not null"`
	Phone         string     `gorm:"type:varchar(30);uniqueIndex:uq_rider_phone;not null"`
	VehicleNumber string     `gorm:"type:varchar(50);not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'Inactive'"`
	CompanyID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (RiderProfile) TableName() string {
	return "rider_profiles"
}
