package models

import (
	"time"

	"github.com/google/uuid"
)

type PackageRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Origin      string    `gorm:"type:varchar(100);not null"`
	Destination string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	WeightKg    float64   `gorm:"not null"`
	RewardEUR   float64   `gorm:"column:reward_eur;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TravelTrip struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TravelerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Origin        string    `gorm:"type:varchar(100);not null"`
	Destination   string    `gorm:"type:varchar(100);not null"`
	DepartureDate time.Time `gorm:"not null"`
	CapacityKg    float64   `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'planned';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;index"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountEUR float64   `gorm:"column:amount_eur;not null"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Reference string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DeliveryTracking struct {
	PackageID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Location  *string   `gorm:"type:varchar(255)"`
	UpdatedAt time.Time
}

func (DeliveryTracking) TableName() string {
	return "delivery_tracking"
}

type Wallet struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	BalanceEUR float64   `gorm:"column:balance_eur;not null;default:0"`
	Currency   string    `gorm:"type:varchar(8);not null;default:'EUR'"`
	UpdatedAt  time.Time
}
