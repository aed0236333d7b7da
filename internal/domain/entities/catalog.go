package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PackageStatus represents the lifecycle of a package request
type PackageStatus string

const (
	PackageStatusOpen      PackageStatus = "open"
	PackageStatusMatched   PackageStatus = "matched"
	PackageStatusInTransit PackageStatus = "in_transit"
	PackageStatusDelivered PackageStatus = "delivered"
	PackageStatusCancelled PackageStatus = "cancelled"
)

// Valid reports whether the status is one of the declared set.
func (s PackageStatus) Valid() bool {
	switch s {
	case PackageStatusOpen, PackageStatusMatched, PackageStatusInTransit,
		PackageStatusDelivered, PackageStatusCancelled:
		return true
	}
	return false
}

// PackageRequest is a sender's request to have a package carried
type PackageRequest struct {
	ID          uuid.UUID     `json:"id"`
	SenderID    uuid.UUID     `json:"senderId"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Description string        `json:"description"`
	WeightKg    float64       `json:"weightKg"`
	RewardEUR   float64       `json:"rewardEur"`
	Status      PackageStatus `json:"status"`
	// DeliveryStatus is merged from the delivery_tracking table at read
	// time and never stored on the package row.
	DeliveryStatus null.String `json:"deliveryStatus,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// TripStatus represents the lifecycle of a travel trip
type TripStatus string

const (
	TripStatusPlanned   TripStatus = "planned"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// Valid reports whether the status is one of the declared set.
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanned, TripStatusActive, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// TravelTrip is a traveler's announced journey with spare capacity
type TravelTrip struct {
	ID            uuid.UUID  `json:"id"`
	TravelerID    uuid.UUID  `json:"travelerId"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate time.Time  `json:"departureDate"`
	CapacityKg    float64    `json:"capacityKg"`
	Status        TripStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BookingStatus represents the lifecycle of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the declared set.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking matches a package request with a trip
type Booking struct {
	ID        uuid.UUID     `json:"id"`
	PackageID uuid.UUID     `json:"packageId"`
	TripID    uuid.UUID     `json:"tripId"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// TransactionStatus represents the state of a payment transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Valid reports whether the status is one of the declared set.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted,
		TransactionStatusFailed, TransactionStatusRefunded:
		return true
	}
	return false
}

// Transaction is a payment record tied to a booking
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	BookingID uuid.UUID         `json:"bookingId"`
	UserID    uuid.UUID         `json:"userId"`
	AmountEUR float64           `json:"amountEur"`
	Type      string            `json:"type"`
	Status    TransactionStatus `json:"status"`
	Reference string            `json:"reference"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// DeliveryTracking is the per-package delivery progress record, keyed by
// package ID and joined into package list views at read time.
type DeliveryTracking struct {
	PackageID uuid.UUID   `json:"packageId"`
	Status    string      `json:"status"`
	Location  null.String `json:"location,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Wallet is a user's platform balance (read-only in the CRM)
type Wallet struct {
	UserID     uuid.UUID `json:"userId"`
	BalanceEUR float64   `json:"balanceEur"`
	Currency   string    `json:"currency"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CatalogListFilter holds the shared list-view filters for packages,
// trips, bookings and transactions.
type CatalogListFilter struct {
	Status string
	Search string
}
