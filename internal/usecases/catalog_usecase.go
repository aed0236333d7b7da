package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// CatalogUsecase exposes the back-office list/inspect/update surface over
// packages, trips, bookings, transactions and wallets. Status updates go
// through the entity enums so an unknown value never reaches the database.
type CatalogUsecase struct {
	packageRepo     repositories.PackageRepository
	tripRepo        repositories.TripRepository
	bookingRepo     repositories.BookingRepository
	transactionRepo repositories.TransactionRepository
	walletRepo      repositories.WalletRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	packageRepo repositories.PackageRepository,
	tripRepo repositories.TripRepository,
	bookingRepo repositories.BookingRepository,
	transactionRepo repositories.TransactionRepository,
	walletRepo repositories.WalletRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		packageRepo:     packageRepo,
		tripRepo:        tripRepo,
		bookingRepo:     bookingRepo,
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
	}
}

// normalizeStatusFilter treats "all" and "" as no filter; any other value
// must pass the supplied validator.
func normalizeStatusFilter(status string, valid func(string) bool) (string, error) {
	if status == "" || status == "all" {
		return "", nil
	}
	if !valid(status) {
		return "", domainerrors.BadRequest("invalid status filter: " + status)
	}
	return status, nil
}

// GetPackage returns a single package request by ID
func (u *CatalogUsecase) GetPackage(ctx context.Context, id uuid.UUID) (*entities.PackageRequest, error) {
	return u.packageRepo.GetByID(ctx, id)
}

// ListPackages returns a page of package requests
func (u *CatalogUsecase) ListPackages(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.PackageRequest, int64, error) {
	status, err := normalizeStatusFilter(filter.Status, func(s string) bool {
		return entities.PackageStatus(s).Valid()
	})
	if err != nil {
		return nil, 0, err
	}
	filter.Status = status
	return u.packageRepo.List(ctx, filter, p)
}

// UpdatePackageStatus moves a package to a new lifecycle status
func (u *CatalogUsecase) UpdatePackageStatus(ctx context.Context, id uuid.UUID, status string) (*entities.PackageRequest, error) {
	next := entities.PackageStatus(status)
	if !next.Valid() {
		return nil, domainerrors.BadRequest("invalid package status: " + status)
	}
	if err := u.packageRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return u.packageRepo.GetByID(ctx, id)
}

// DeletePackage removes a package request
func (u *CatalogUsecase) DeletePackage(ctx context.Context, id uuid.UUID) error {
	return u.packageRepo.Delete(ctx, id)
}

// GetTrip returns a single travel trip by ID
func (u *CatalogUsecase) GetTrip(ctx context.Context, id uuid.UUID) (*entities.TravelTrip, error) {
	return u.tripRepo.GetByID(ctx, id)
}

// ListTrips returns a page of travel trips
func (u *CatalogUsecase) ListTrips(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.TravelTrip, int64, error) {
	status, err := normalizeStatusFilter(filter.Status, func(s string) bool {
		return entities.TripStatus(s).Valid()
	})
	if err != nil {
		return nil, 0, err
	}
	filter.Status = status
	return u.tripRepo.List(ctx, filter, p)
}

// UpdateTripStatus moves a trip to a new lifecycle status
func (u *CatalogUsecase) UpdateTripStatus(ctx context.Context, id uuid.UUID, status string) (*entities.TravelTrip, error) {
	next := entities.TripStatus(status)
	if !next.Valid() {
		return nil, domainerrors.BadRequest("invalid trip status: " + status)
	}
	if err := u.tripRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return u.tripRepo.GetByID(ctx, id)
}

// DeleteTrip removes a travel trip
func (u *CatalogUsecase) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return u.tripRepo.Delete(ctx, id)
}

// GetBooking returns a single booking by ID
func (u *CatalogUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	return u.bookingRepo.GetByID(ctx, id)
}

// ListBookings returns a page of bookings
func (u *CatalogUsecase) ListBookings(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Booking, int64, error) {
	status, err := normalizeStatusFilter(filter.Status, func(s string) bool {
		return entities.BookingStatus(s).Valid()
	})
	if err != nil {
		return nil, 0, err
	}
	filter.Status = status
	return u.bookingRepo.List(ctx, filter, p)
}

// UpdateBookingStatus moves a booking to a new lifecycle status
func (u *CatalogUsecase) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*entities.Booking, error) {
	next := entities.BookingStatus(status)
	if !next.Valid() {
		return nil, domainerrors.BadRequest("invalid booking status: " + status)
	}
	if err := u.bookingRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return u.bookingRepo.GetByID(ctx, id)
}

// DeleteBooking removes a booking
func (u *CatalogUsecase) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return u.bookingRepo.Delete(ctx, id)
}

// GetTransaction returns a single transaction by ID
func (u *CatalogUsecase) GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	return u.transactionRepo.GetByID(ctx, id)
}

// ListTransactions returns a page of transactions
func (u *CatalogUsecase) ListTransactions(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Transaction, int64, error) {
	status, err := normalizeStatusFilter(filter.Status, func(s string) bool {
		return entities.TransactionStatus(s).Valid()
	})
	if err != nil {
		return nil, 0, err
	}
	filter.Status = status
	return u.transactionRepo.List(ctx, filter, p)
}

// UpdateTransactionStatus moves a transaction to a new state
func (u *CatalogUsecase) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status string) (*entities.Transaction, error) {
	next := entities.TransactionStatus(status)
	if !next.Valid() {
		return nil, domainerrors.BadRequest("invalid transaction status: " + status)
	}
	if err := u.transactionRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return u.transactionRepo.GetByID(ctx, id)
}

// DeleteTransaction removes a transaction
func (u *CatalogUsecase) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return u.transactionRepo.Delete(ctx, id)
}

// GetWallet returns a user's wallet
func (u *CatalogUsecase) GetWallet(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	return u.walletRepo.GetByUserID(ctx, userID)
}

// ListWallets returns a page of wallets
func (u *CatalogUsecase) ListWallets(ctx context.Context, p utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	return u.walletRepo.List(ctx, p)
}
