package usecases

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/config"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/crypto"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
)

// OTPUsecase handles one-time-password issuance and verification.
//
// A record lives in exactly one of three states: issued (unused, before
// expiry), consumed (used once) or expired. Consumed and expired are
// terminal.
type OTPUsecase struct {
	otpRepo  repositories.OTPRepository
	userRepo repositories.UserRepository
	mailer   Mailer
	cfg      config.OTPConfig
	now      func() time.Time
}

// NewOTPUsecase creates a new OTP usecase
func NewOTPUsecase(otpRepo repositories.OTPRepository, userRepo repositories.UserRepository, mailer Mailer, cfg config.OTPConfig) *OTPUsecase {
	return &OTPUsecase{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
		now:      time.Now,
	}
}

// TTL returns the configured time-to-live for a purpose
func (u *OTPUsecase) TTL(purpose entities.OTPPurpose) time.Duration {
	if purpose == entities.OTPPurposeDelivery {
		return u.cfg.DeliveryCodeTTL
	}
	return u.cfg.CodeTTL
}

// Issue generates a fresh 6-digit code for (email, purpose), overwriting
// any prior code for the key, and emails it. For password-reset and CRM
// login it reports success even when no account matches the email, so the
// endpoint cannot be used to probe which addresses have accounts.
func (u *OTPUsecase) Issue(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	if !purpose.Valid() {
		return domainerrors.BadRequest("unknown otp purpose")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			if purpose == entities.OTPPurposePasswordReset || purpose == entities.OTPPurposeCRMLogin {
				// Generic success: "if an account exists, a code was sent".
				logger.Info(ctx, "otp issue for unknown account suppressed", zap.String("purpose", string(purpose)))
				return nil
			}
			return domainerrors.NotFound("no account for this email")
		}
		return err
	}

	code, err := crypto.GenerateOTPCode()
	if err != nil {
		return err
	}

	ttl := u.TTL(purpose)
	now := u.now()
	record := &entities.OTPCode{
		Email:     user.Email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := u.otpRepo.Upsert(ctx, record); err != nil {
		return err
	}

	if err := u.mailer.SendOTP(ctx, user.Email, code, purpose, ttl); err != nil {
		logger.Error(ctx, "failed to send otp email", zap.String("purpose", string(purpose)), zap.Error(err))
		return domainerrors.MailSendFailed(err)
	}

	logger.Info(ctx, "otp issued", zap.String("purpose", string(purpose)))
	return nil
}

// Verify checks a submitted code against the stored record and consumes
// it on success. Failure modes, in check order: record absent, purpose
// mismatch, already used, expired, code mismatch.
func (u *OTPUsecase) Verify(ctx context.Context, email, submittedCode string, purpose entities.OTPPurpose) error {
	if !purpose.Valid() {
		return domainerrors.BadRequest("unknown otp purpose")
	}

	record, err := u.otpRepo.Get(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no verification code found for this email")
		}
		return err
	}

	if record.Purpose != purpose {
		return domainerrors.BadRequest("verification code was issued for a different purpose")
	}
	if record.Used {
		return domainerrors.FailedPrecondition("verification code already used", domainerrors.ErrCodeAlreadyUsed)
	}
	if record.Expired(u.now()) {
		if purpose == entities.OTPPurposeEmailVerification {
			// Stale verification records are purged on discovery.
			if err := u.otpRepo.Delete(ctx, email, purpose); err != nil {
				logger.Warn(ctx, "failed to delete expired otp record", zap.Error(err))
			}
		}
		return domainerrors.FailedPrecondition("verification code expired", domainerrors.ErrCodeExpired)
	}
	if record.Code != submittedCode {
		return domainerrors.Forbidden("verification code does not match")
	}

	if err := u.otpRepo.MarkUsed(ctx, email, purpose); err != nil {
		return err
	}

	// Purpose-specific effect.
	if purpose == entities.OTPPurposeEmailVerification {
		user, err := u.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if err := u.userRepo.SetEmailVerified(ctx, user.ID); err != nil {
			return err
		}
	}

	logger.Info(ctx, "otp verified", zap.String("purpose", string(purpose)))
	return nil
}

// ResetPassword redeems a password-reset code and replaces the stored
// credential in one step.
func (u *OTPUsecase) ResetPassword(ctx context.Context, email, submittedCode, newPassword string) error {
	if err := u.Verify(ctx, email, submittedCode, entities.OTPPurposePasswordReset); err != nil {
		return err
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePasswordHash(ctx, user.ID, hash)
}
