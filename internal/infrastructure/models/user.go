package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName            string    `gorm:"type:varchar(100);not null"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone               string    `gorm:"type:varchar(32)"`
	Address             string    `gorm:"type:varchar(255)"`
	City                string    `gorm:"type:varchar(100)"`
	Country             string    `gorm:"type:varchar(100)"`
	Role                string    `gorm:"type:varchar(20);not null;default:'sender'"`
	Blocked             bool      `gorm:"not null;default:false"`
	PasswordHash        string    `gorm:"type:varchar(255)"`
	EmailVerified       bool      `gorm:"not null;default:false"`
	PhoneVerified       bool      `gorm:"not null;default:false"`
	IdentityVerified    bool      `gorm:"not null;default:false"`
	IdentitySubmittedAt *time.Time
	IdentityVerifiedAt  *time.Time
	RejectionReason     *string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
