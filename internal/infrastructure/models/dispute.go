package models

import (
	"time"

	"github.com/google/uuid"
)

// Dispute stores evidence as a JSON-encoded array of base64 images.
type Dispute struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisputeID      string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	ReporterID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ReportedUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	BookingID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason         string    `gorm:"type:varchar(40);not null"`
	Description    string    `gorm:"type:text;not null"`
	Evidence       string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority       string    `gorm:"type:varchar(10);not null;default:'medium'"`
	AdminID        *string   `gorm:"type:varchar(64)"`
	AssignedTo     *string   `gorm:"type:varchar(100)"`
	AdminNotes     *string   `gorm:"type:text"`
	Resolution     *string   `gorm:"type:text"`
	ResolutionType *string   `gorm:"type:varchar(32)"`
	CreatedAt      time.Time
	LastUpdated    time.Time
	ResolvedAt     *time.Time
}
