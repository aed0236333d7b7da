package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode has a composite unique key on (email, purpose): one active code
// per recipient per purpose.
type OTPCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_otp_email_purpose"`
	Purpose   string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_otp_email_purpose"`
	Code      string    `gorm:"type:char(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time
	CreatedAt time.Time
}

func (OTPCode) TableName() string {
	return "otp_codes"
}
