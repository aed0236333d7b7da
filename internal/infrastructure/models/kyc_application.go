package models

import (
	"time"

	"github.com/google/uuid"
)

type KYCApplication struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	SelfieImage     string    `gorm:"type:text"`
	FrontImage      string    `gorm:"type:text"`
	BackImage       string    `gorm:"type:text"`
	FullName        string    `gorm:"type:varchar(100)"`
	DateOfBirth     string    `gorm:"type:varchar(10)"`
	Gender          string    `gorm:"type:varchar(20)"`
	Phone           string    `gorm:"type:varchar(32)"`
	Address         string    `gorm:"type:varchar(255)"`
	SubmittedAt     time.Time
	UpdatedAt       time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *string `gorm:"type:varchar(100)"`
	RejectionReason *string `gorm:"type:text"`
}

func (KYCApplication) TableName() string {
	return "kyc_applications"
}
