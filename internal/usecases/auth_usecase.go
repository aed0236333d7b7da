package usecases

import (
	"context"
	"errors"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/crypto"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/jwt"
)

// AuthUsecase handles CRM admin authentication. Login is two-step:
// password check issues a login OTP, and verifying the code yields the
// token pair.
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	otpUsecase *OTPUsecase
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, otpUsecase *OTPUsecase, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		otpUsecase: otpUsecase,
		jwtService: jwtService,
	}
}

// Login checks admin credentials and, on success, emails a login code.
// Credential failures and non-admin accounts surface the same error so
// the endpoint leaks nothing about which part failed.
func (a *AuthUsecase) Login(ctx context.Context, email, password string) error {
	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.Unauthorized("invalid email or password")
		}
		return err
	}

	if user.Role != entities.UserRoleAdmin || user.Blocked {
		return domainerrors.Unauthorized("invalid email or password")
	}
	if !crypto.CheckPassword(password, user.PasswordHash) {
		return domainerrors.Unauthorized("invalid email or password")
	}

	return a.otpUsecase.Issue(ctx, email, entities.OTPPurposeCRMLogin)
}

// VerifyLogin redeems a login code for a token pair
func (a *AuthUsecase) VerifyLogin(ctx context.Context, email, code string) (*jwt.TokenPair, *entities.User, error) {
	if err := a.otpUsecase.Verify(ctx, email, code, entities.OTPPurposeCRMLogin); err != nil {
		return nil, nil, err
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	pair, err := a.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh generates a new token pair from a valid refresh token
func (a *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired refresh token")
	}

	user, err := a.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleAdmin || user.Blocked {
		return nil, domainerrors.Unauthorized("account is no longer an active admin")
	}

	return a.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}
