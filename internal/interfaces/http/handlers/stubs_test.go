package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asAdmin fakes an authenticated admin for routes that read the claims
func asAdmin(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", uuid.New())
		c.Set("userEmail", email)
		c.Set("userRole", "admin")
	}
}

type stubUserRepo struct {
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn   func(ctx context.Context, email string) (*entities.User, error)
	listFn         func(ctx context.Context, filter entities.UserListFilter, p utils.PaginationParams) ([]*entities.User, int64, error)
	createFn       func(ctx context.Context, user *entities.User) error
	updateFn       func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	setBlockedFn   func(ctx context.Context, id uuid.UUID, blocked bool) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	setEmailVerFn  func(ctx context.Context, id uuid.UUID) error
	setIdentityFn  func(ctx context.Context, id uuid.UUID, verified bool, reason *string) error
	updatePassFn   func(ctx context.Context, id uuid.UUID, hash string) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) List(ctx context.Context, filter entities.UserListFilter, p utils.PaginationParams) ([]*entities.User, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, p)
	}
	return []*entities.User{}, 0, nil
}

func (s *stubUserRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, updates)
	}
	return nil
}

func (s *stubUserRepo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	if s.setBlockedFn != nil {
		return s.setBlockedFn(ctx, id, blocked)
	}
	return nil
}

func (s *stubUserRepo) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	if s.setEmailVerFn != nil {
		return s.setEmailVerFn(ctx, id)
	}
	return nil
}

func (s *stubUserRepo) SetIdentityVerification(ctx context.Context, id uuid.UUID, verified bool, reason *string) error {
	if s.setIdentityFn != nil {
		return s.setIdentityFn(ctx, id, verified, reason)
	}
	return nil
}

func (s *stubUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	if s.updatePassFn != nil {
		return s.updatePassFn(ctx, id, hash)
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubOTPRepo struct {
	upsertFn   func(ctx context.Context, code *entities.OTPCode) error
	getFn      func(ctx context.Context, email string, purpose entities.OTPPurpose) (*entities.OTPCode, error)
	markUsedFn func(ctx context.Context, email string, purpose entities.OTPPurpose) error
	deleteFn   func(ctx context.Context, email string, purpose entities.OTPPurpose) error
}

func (s *stubOTPRepo) Upsert(ctx context.Context, code *entities.OTPCode) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, code)
	}
	return nil
}

func (s *stubOTPRepo) Get(ctx context.Context, email string, purpose entities.OTPPurpose) (*entities.OTPCode, error) {
	if s.getFn != nil {
		return s.getFn(ctx, email, purpose)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubOTPRepo) MarkUsed(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	if s.markUsedFn != nil {
		return s.markUsedFn(ctx, email, purpose)
	}
	return nil
}

func (s *stubOTPRepo) Delete(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, email, purpose)
	}
	return nil
}

type stubKYCRepo struct {
	upsertFn    func(ctx context.Context, app *entities.KYCApplication) error
	getFn       func(ctx context.Context, userID uuid.UUID) (*entities.KYCApplication, error)
	listFn      func(ctx context.Context, status string, p utils.PaginationParams) ([]*entities.KYCApplication, int64, error)
	updateRevFn func(ctx context.Context, app *entities.KYCApplication) error
	countsFn    func(ctx context.Context) (*entities.KYCCounts, error)
}

func (s *stubKYCRepo) Upsert(ctx context.Context, app *entities.KYCApplication) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, app)
	}
	return nil
}

func (s *stubKYCRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYCApplication, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubKYCRepo) List(ctx context.Context, status string, p utils.PaginationParams) ([]*entities.KYCApplication, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, status, p)
	}
	return []*entities.KYCApplication{}, 0, nil
}

func (s *stubKYCRepo) UpdateReview(ctx context.Context, app *entities.KYCApplication) error {
	if s.updateRevFn != nil {
		return s.updateRevFn(ctx, app)
	}
	return nil
}

func (s *stubKYCRepo) Counts(ctx context.Context) (*entities.KYCCounts, error) {
	if s.countsFn != nil {
		return s.countsFn(ctx)
	}
	return &entities.KYCCounts{}, nil
}

type stubDisputeRepo struct {
	createFn func(ctx context.Context, dispute *entities.Dispute) error
	getFn    func(ctx context.Context, id uuid.UUID) (*entities.Dispute, error)
	listFn   func(ctx context.Context, filter entities.DisputeListFilter, p utils.PaginationParams) ([]*entities.Dispute, int64, error)
	updateFn func(ctx context.Context, dispute *entities.Dispute) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
	statsFn  func(ctx context.Context) (*entities.DisputeStats, error)
}

func (s *stubDisputeRepo) Create(ctx context.Context, dispute *entities.Dispute) error {
	if s.createFn != nil {
		return s.createFn(ctx, dispute)
	}
	return nil
}

func (s *stubDisputeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Dispute, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubDisputeRepo) List(ctx context.Context, filter entities.DisputeListFilter, p utils.PaginationParams) ([]*entities.Dispute, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, p)
	}
	return []*entities.Dispute{}, 0, nil
}

func (s *stubDisputeRepo) Update(ctx context.Context, dispute *entities.Dispute) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, dispute)
	}
	return nil
}

func (s *stubDisputeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubDisputeRepo) Stats(ctx context.Context) (*entities.DisputeStats, error) {
	if s.statsFn != nil {
		return s.statsFn(ctx)
	}
	return &entities.DisputeStats{}, nil
}

type stubPackageRepo struct {
	getFn    func(ctx context.Context, id uuid.UUID) (*entities.PackageRequest, error)
	listFn   func(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.PackageRequest, int64, error)
	updateFn func(ctx context.Context, id uuid.UUID, status entities.PackageStatus) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.PackageRequest, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubPackageRepo) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.PackageRequest, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, p)
	}
	return []*entities.PackageRequest{}, 0, nil
}

func (s *stubPackageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PackageStatus) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, status)
	}
	return nil
}

func (s *stubPackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubTripRepo struct{}

func (s *stubTripRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.TravelTrip, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubTripRepo) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.TravelTrip, int64, error) {
	return []*entities.TravelTrip{}, 0, nil
}

func (s *stubTripRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TripStatus) error {
	return nil
}

func (s *stubTripRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubBookingRepo struct{}

func (s *stubBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubBookingRepo) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Booking, int64, error) {
	return []*entities.Booking{}, 0, nil
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	return nil
}

func (s *stubBookingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubTransactionRepo struct{}

func (s *stubTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubTransactionRepo) List(ctx context.Context, filter entities.CatalogListFilter, p utils.PaginationParams) ([]*entities.Transaction, int64, error) {
	return []*entities.Transaction{}, 0, nil
}

func (s *stubTransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	return nil
}

func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubWalletRepo struct {
	getFn func(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
}

func (s *stubWalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubWalletRepo) List(ctx context.Context, p utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	return []*entities.Wallet{}, 0, nil
}

type stubCampaignRepo struct {
	createFn func(ctx context.Context, campaign *entities.EmailCampaign) error
	updateFn func(ctx context.Context, campaign *entities.EmailCampaign) error
	listFn   func(ctx context.Context, p utils.PaginationParams) ([]*entities.EmailCampaign, int64, error)
}

func (s *stubCampaignRepo) Create(ctx context.Context, campaign *entities.EmailCampaign) error {
	if s.createFn != nil {
		return s.createFn(ctx, campaign)
	}
	return nil
}

func (s *stubCampaignRepo) Update(ctx context.Context, campaign *entities.EmailCampaign) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, campaign)
	}
	return nil
}

func (s *stubCampaignRepo) List(ctx context.Context, p utils.PaginationParams) ([]*entities.EmailCampaign, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, p)
	}
	return []*entities.EmailCampaign{}, 0, nil
}

type stubMailer struct {
	sendOTPFn         func(ctx context.Context, to, code string, purpose entities.OTPPurpose, ttl time.Duration) error
	sendWelcomeFn     func(ctx context.Context, to, name string) error
	sendDeliveryFn    func(ctx context.Context, to, packageID, status, message string) error
	sendPromotionalFn func(ctx context.Context, to, subject, body string) error
	sendTestFn        func(ctx context.Context, to string) error
}

func (s *stubMailer) SendOTP(ctx context.Context, to, code string, purpose entities.OTPPurpose, ttl time.Duration) error {
	if s.sendOTPFn != nil {
		return s.sendOTPFn(ctx, to, code, purpose, ttl)
	}
	return nil
}

func (s *stubMailer) SendWelcome(ctx context.Context, to, name string) error {
	if s.sendWelcomeFn != nil {
		return s.sendWelcomeFn(ctx, to, name)
	}
	return nil
}

func (s *stubMailer) SendDeliveryUpdate(ctx context.Context, to, packageID, status, message string) error {
	if s.sendDeliveryFn != nil {
		return s.sendDeliveryFn(ctx, to, packageID, status, message)
	}
	return nil
}

func (s *stubMailer) SendPromotional(ctx context.Context, to, subject, body string) error {
	if s.sendPromotionalFn != nil {
		return s.sendPromotionalFn(ctx, to, subject, body)
	}
	return nil
}

func (s *stubMailer) SendTest(ctx context.Context, to string) error {
	if s.sendTestFn != nil {
		return s.sendTestFn(ctx, to)
	}
	return nil
}

type stubUnitOfWork struct{}

func (s *stubUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
