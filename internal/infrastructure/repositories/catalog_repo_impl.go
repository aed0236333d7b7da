package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/models"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// PackageRepository implements package-request operations
type PackageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// GetByID gets a package request by ID, merging its delivery status
func (r *PackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PackageRequest, error) {
	var m models.PackageRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	pkg := packageToEntity(&m)
	r.mergeDeliveryStatus(ctx, []*entities.PackageRequest{pkg})
	return pkg, nil
}

// List lists package requests; delivery status is looked up from the
// tracking table and merged at read time.
func (r *PackageRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.PackageRequest, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PackageRequest{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("LOWER(origin) LIKE LOWER(?) OR LOWER(destination) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pkgModels []models.PackageRequest
	if err := query.Order("created_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&pkgModels).Error; err != nil {
		return nil, 0, err
	}

	pkgs := make([]*entities.PackageRequest, 0, len(pkgModels))
	for i := range pkgModels {
		pkgs = append(pkgs, packageToEntity(&pkgModels[i]))
	}
	r.mergeDeliveryStatus(ctx, pkgs)
	return pkgs, total, nil
}

// UpdateStatus updates the package status and stamps updated_at
func (r *PackageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PackageStatus) error {
	return updateStatusByID(ctx, GetDB(ctx, r.db), &models.PackageRequest{}, id, string(status))
}

// Delete removes a package request by ID
func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.PackageRequest{}, id)
}

func (r *PackageRepository) mergeDeliveryStatus(ctx context.Context, pkgs []*entities.PackageRequest) {
	if len(pkgs) == 0 {
		return
	}
	ids := make([]uuid.UUID, 0, len(pkgs))
	for _, p := range pkgs {
		ids = append(ids, p.ID)
	}

	var tracking []models.DeliveryTracking
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("package_id IN ?", ids).Find(&tracking).Error; err != nil {
		// Tracking is informational; package rows still render without it.
		return
	}

	byPackage := make(map[uuid.UUID]string, len(tracking))
	for _, t := range tracking {
		byPackage[t.PackageID] = t.Status
	}
	for _, p := range pkgs {
		if status, ok := byPackage[p.ID]; ok {
			p.DeliveryStatus = null.StringFrom(status)
		}
	}
}

func packageToEntity(m *models.PackageRequest) *entities.PackageRequest {
	return &entities.PackageRequest{
		ID:          m.ID,
		SenderID:    m.SenderID,
		Origin:      m.Origin,
		Destination: m.Destination,
		Description: m.Description,
		WeightKg:    m.WeightKg,
		RewardEUR:   m.RewardEUR,
		Status:      entities.PackageStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TripRepository implements travel-trip operations
type TripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// GetByID gets a trip by ID
func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TravelTrip, error) {
	var m models.TravelTrip
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tripToEntity(&m), nil
}

// List lists trips with status/search filters and pagination
func (r *TripRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.TravelTrip, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.TravelTrip{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("LOWER(origin) LIKE LOWER(?) OR LOWER(destination) LIKE LOWER(?)", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tripModels []models.TravelTrip
	if err := query.Order("departure_date DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&tripModels).Error; err != nil {
		return nil, 0, err
	}

	trips := make([]*entities.TravelTrip, 0, len(tripModels))
	for i := range tripModels {
		trips = append(trips, tripToEntity(&tripModels[i]))
	}
	return trips, total, nil
}

// UpdateStatus updates the trip status and stamps updated_at
func (r *TripRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TripStatus) error {
	return updateStatusByID(ctx, GetDB(ctx, r.db), &models.TravelTrip{}, id, string(status))
}

// Delete removes a trip by ID
func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.TravelTrip{}, id)
}

func tripToEntity(m *models.TravelTrip) *entities.TravelTrip {
	return &entities.TravelTrip{
		ID:            m.ID,
		TravelerID:    m.TravelerID,
		Origin:        m.Origin,
		Destination:   m.Destination,
		DepartureDate: m.DepartureDate,
		CapacityKg:    m.CapacityKg,
		Status:        entities.TripStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// BookingRepository implements booking operations
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GetByID gets a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bookingToEntity(&m), nil
}

// List lists bookings with a status filter and pagination
func (r *BookingRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Booking, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Booking{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookingModels []models.Booking
	if err := query.Order("created_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&bookingModels).Error; err != nil {
		return nil, 0, err
	}

	bookings := make([]*entities.Booking, 0, len(bookingModels))
	for i := range bookingModels {
		bookings = append(bookings, bookingToEntity(&bookingModels[i]))
	}
	return bookings, total, nil
}

// UpdateStatus updates the booking status and stamps updated_at
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	return updateStatusByID(ctx, GetDB(ctx, r.db), &models.Booking{}, id, string(status))
}

// Delete removes a booking by ID
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Booking{}, id)
}

func bookingToEntity(m *models.Booking) *entities.Booking {
	return &entities.Booking{
		ID:        m.ID,
		PackageID: m.PackageID,
		TripID:    m.TripID,
		Status:    entities.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TransactionRepository implements transaction operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetByID gets a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return transactionToEntity(&m), nil
}

// List lists transactions with status/search filters and pagination
func (r *TransactionRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Transaction, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("LOWER(reference) LIKE LOWER(?) OR LOWER(type) LIKE LOWER(?)", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txModels []models.Transaction
	if err := query.Order("created_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&txModels).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.Transaction, 0, len(txModels))
	for i := range txModels {
		txs = append(txs, transactionToEntity(&txModels[i]))
	}
	return txs, total, nil
}

// UpdateStatus updates the transaction status and stamps updated_at
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	return updateStatusByID(ctx, GetDB(ctx, r.db), &models.Transaction{}, id, string(status))
}

// Delete removes a transaction by ID
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, GetDB(ctx, r.db), &models.Transaction{}, id)
}

func transactionToEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:        m.ID,
		BookingID: m.BookingID,
		UserID:    m.UserID,
		AmountEUR: m.AmountEUR,
		Type:      m.Type,
		Status:    entities.TransactionStatus(m.Status),
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// WalletRepository implements the read-only wallet surface
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetByUserID gets a wallet by owner
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return walletToEntity(&m), nil
}

// List lists wallets with pagination
func (r *WalletRepository) List(ctx context.Context, p utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Wallet{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var walletModels []models.Wallet
	if err := query.Order("updated_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&walletModels).Error; err != nil {
		return nil, 0, err
	}

	wallets := make([]*entities.Wallet, 0, len(walletModels))
	for i := range walletModels {
		wallets = append(wallets, walletToEntity(&walletModels[i]))
	}
	return wallets, total, nil
}

func walletToEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		UserID:     m.UserID,
		BalanceEUR: m.BalanceEUR,
		Currency:   m.Currency,
		UpdatedAt:  m.UpdatedAt,
	}
}

// shared helpers for the uniform status-update/delete pattern

func updateStatusByID(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID, status string) error {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
