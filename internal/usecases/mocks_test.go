package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter entities.UserListFilter, p utils.PaginationParams) ([]*entities.User, int64, error) {
	args := m.Called(ctx, filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockUserRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	return m.Called(ctx, id, blocked).Error(0)
}

func (m *MockUserRepository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) SetIdentityVerification(ctx context.Context, id uuid.UUID, verified bool, reason *string) error {
	return m.Called(ctx, id, verified, reason).Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Upsert(ctx context.Context, code *entities.OTPCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockOTPRepository) Get(ctx context.Context, email string, purpose entities.OTPPurpose) (*entities.OTPCode, error) {
	args := m.Called(ctx, email, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OTPCode), args.Error(1)
}

func (m *MockOTPRepository) MarkUsed(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	return m.Called(ctx, email, purpose).Error(0)
}

func (m *MockOTPRepository) Delete(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	return m.Called(ctx, email, purpose).Error(0)
}

// Mock KYCRepository
type MockKYCRepository struct {
	mock.Mock
}

func (m *MockKYCRepository) Upsert(ctx context.Context, app *entities.KYCApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockKYCRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYCApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.KYCApplication), args.Error(1)
}

func (m *MockKYCRepository) List(ctx context.Context, status string, p utils.PaginationParams) ([]*entities.KYCApplication, int64, error) {
	args := m.Called(ctx, status, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.KYCApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockKYCRepository) UpdateReview(ctx context.Context, app *entities.KYCApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockKYCRepository) Counts(ctx context.Context) (*entities.KYCCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.KYCCounts), args.Error(1)
}

// Mock DisputeRepository
type MockDisputeRepository struct {
	mock.Mock
}

func (m *MockDisputeRepository) Create(ctx context.Context, dispute *entities.Dispute) error {
	return m.Called(ctx, dispute).Error(0)
}

func (m *MockDisputeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) List(ctx context.Context, filter entities.DisputeListFilter, p utils.PaginationParams) ([]*entities.Dispute, int64, error) {
	args := m.Called(ctx, filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Dispute), args.Get(1).(int64), args.Error(2)
}

func (m *MockDisputeRepository) Update(ctx context.Context, dispute *entities.Dispute) error {
	return m.Called(ctx, dispute).Error(0)
}

func (m *MockDisputeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDisputeRepository) Stats(ctx context.Context) (*entities.DisputeStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DisputeStats), args.Error(1)
}

// Mock CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *entities.EmailCampaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *entities.EmailCampaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *MockCampaignRepository) List(ctx context.Context, p utils.PaginationParams) ([]*entities.EmailCampaign, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.EmailCampaign), args.Get(1).(int64), args.Error(2)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(ctx context.Context, to, code string, purpose entities.OTPPurpose, ttl time.Duration) error {
	return m.Called(ctx, to, code, purpose, ttl).Error(0)
}

func (m *MockMailer) SendWelcome(ctx context.Context, to, name string) error {
	return m.Called(ctx, to, name).Error(0)
}

func (m *MockMailer) SendDeliveryUpdate(ctx context.Context, to, packageID, status, message string) error {
	return m.Called(ctx, to, packageID, status, message).Error(0)
}

func (m *MockMailer) SendPromotional(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

func (m *MockMailer) SendTest(ctx context.Context, to string) error {
	return m.Called(ctx, to).Error(0)
}

// Mock PackageRepository
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PackageRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PackageRequest), args.Error(1)
}

func (m *MockPackageRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.PackageRequest, int64, error) {
	args := m.Called(ctx, filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.PackageRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockPackageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PackageStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TravelTrip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TravelTrip), args.Error(1)
}

func (m *MockTripRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.TravelTrip, int64, error) {
	args := m.Called(ctx, filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.TravelTrip), args.Get(1).(int64), args.Error(2)
}

func (m *MockTripRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TripStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Booking, int64, error) {
	args := m.Called(ctx, filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Transaction, int64, error) {
	args := m.Called(ctx, filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) List(ctx context.Context, p utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Wallet), args.Get(1).(int64), args.Error(2)
}
