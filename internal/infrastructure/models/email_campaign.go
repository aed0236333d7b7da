package models

import (
	"time"

	"github.com/google/uuid"
)

type EmailCampaign struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Subject        string    `gorm:"type:varchar(255);not null"`
	Body           string    `gorm:"type:text;not null"`
	RecipientCount int       `gorm:"not null"`
	SentCount      int       `gorm:"not null;default:0"`
	FailedCount    int       `gorm:"not null;default:0"`
	Status         string    `gorm:"type:varchar(20);not null;default:'sending'"`
	CreatedBy      string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
