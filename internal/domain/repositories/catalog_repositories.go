package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// PackageRepository defines package-request operations. List merges the
// delivery status from the tracking table into each row.
type PackageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PackageRequest, error)
	List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.PackageRequest, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PackageStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TripRepository defines travel-trip operations
type TripRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TravelTrip, error)
	List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.TravelTrip, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TripStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingRepository defines booking operations
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository defines transaction operations
type TransactionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Transaction, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WalletRepository defines the read-only wallet surface
type WalletRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	List(ctx context.Context, p utils.PaginationParams) ([]*entities.Wallet, int64, error)
}
