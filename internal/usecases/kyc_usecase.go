package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// KYCUsecase handles identity-verification review. The review outcome is
// written to two records (the application and the user's verification
// flag); both writes run inside one unit of work so a failure cannot
// leave them out of step.
type KYCUsecase struct {
	kycRepo  repositories.KYCRepository
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
	now      func() time.Time
}

// NewKYCUsecase creates a new KYC usecase
func NewKYCUsecase(kycRepo repositories.KYCRepository, userRepo repositories.UserRepository, uow repositories.UnitOfWork) *KYCUsecase {
	return &KYCUsecase{
		kycRepo:  kycRepo,
		userRepo: userRepo,
		uow:      uow,
		now:      time.Now,
	}
}

// Submit files or refreshes a user's application and marks it submitted
func (u *KYCUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitKYCInput) (*entities.KYCApplication, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	now := u.now()
	app := &entities.KYCApplication{
		UserID:       userID,
		Status:       entities.KYCStatusSubmitted,
		Documents:    input.Documents,
		PersonalInfo: input.PersonalInfo,
		Audit: entities.KYCAudit{
			SubmittedAt: now,
			UpdatedAt:   now,
		},
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.kycRepo.Upsert(txCtx, app); err != nil {
			return err
		}
		return u.userRepo.Update(txCtx, userID, map[string]interface{}{
			"identity_submitted_at": now,
		})
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Approve marks the application approved and mirrors the outcome onto the
// user record.
func (u *KYCUsecase) Approve(ctx context.Context, userID uuid.UUID, reviewer string) (*entities.KYCApplication, error) {
	app, err := u.kycRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	app.Status = entities.KYCStatusApproved
	app.RejectionReason = null.String{}
	app.Audit.UpdatedAt = now
	app.Audit.ReviewedAt = null.TimeFrom(now)
	app.Audit.ReviewedBy = null.StringFrom(reviewer)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.kycRepo.UpdateReview(txCtx, app); err != nil {
			return err
		}
		return u.userRepo.SetIdentityVerification(txCtx, userID, true, nil)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "kyc application approved", zap.String("user_id", userID.String()), zap.String("reviewer", reviewer))
	return app, nil
}

// Reject marks the application rejected with a mandatory reason, mirrored
// onto the user record for display.
func (u *KYCUsecase) Reject(ctx context.Context, userID uuid.UUID, reason, reviewer string) (*entities.KYCApplication, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.BadRequest("rejection reason is required")
	}

	app, err := u.kycRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	app.Status = entities.KYCStatusRejected
	app.RejectionReason = null.StringFrom(reason)
	app.Audit.UpdatedAt = now
	app.Audit.ReviewedAt = null.TimeFrom(now)
	app.Audit.ReviewedBy = null.StringFrom(reviewer)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.kycRepo.UpdateReview(txCtx, app); err != nil {
			return err
		}
		return u.userRepo.SetIdentityVerification(txCtx, userID, false, &reason)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "kyc application rejected", zap.String("user_id", userID.String()), zap.String("reviewer", reviewer))
	return app, nil
}

// Get returns a single application
func (u *KYCUsecase) Get(ctx context.Context, userID uuid.UUID) (*entities.KYCApplication, error) {
	return u.kycRepo.GetByUserID(ctx, userID)
}

// List returns applications filtered by status, with pagination
func (u *KYCUsecase) List(ctx context.Context, status string, p utils.PaginationParams) ([]*entities.KYCApplication, int64, error) {
	if status != "" && status != "all" && !entities.KYCStatus(status).Valid() {
		return nil, 0, domainerrors.BadRequest("unknown kyc status filter")
	}
	return u.kycRepo.List(ctx, status, p)
}

// Counts returns the per-status application counts
func (u *KYCUsecase) Counts(ctx context.Context) (*entities.KYCCounts, error) {
	return u.kycRepo.Counts(ctx)
}
