package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/crypto"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// UserUsecase handles user administration
type UserUsecase struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Create creates a user from an admin-entered payload
func (u *UserUsecase) Create(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	role := entities.UserRole(input.Role)
	if !role.Valid() {
		return nil, domainerrors.BadRequest("unknown user role")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := u.now()
	user := &entities.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		Country:      input.Country,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	return user, nil
}

// Get returns a single user
func (u *UserUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// List returns users matching the filters, with pagination
func (u *UserUsecase) List(ctx context.Context, filter entities.UserListFilter, p utils.PaginationParams) ([]*entities.User, int64, error) {
	if filter.Role != "" && filter.Role != "all" && !entities.UserRole(filter.Role).Valid() {
		return nil, 0, domainerrors.BadRequest("unknown role filter")
	}
	if filter.Role == "all" {
		filter.Role = ""
	}
	return u.userRepo.List(ctx, filter, p)
}

// Update applies a partial admin edit. Only the fields present in the
// payload are written; updated_at is always stamped.
func (u *UserUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.Country != nil {
		updates["country"] = *input.Country
	}
	if input.Role != nil {
		if !entities.UserRole(*input.Role).Valid() {
			return nil, domainerrors.BadRequest("unknown user role")
		}
		updates["role"] = *input.Role
	}
	if len(updates) == 0 {
		return nil, domainerrors.BadRequest("no fields to update")
	}

	if err := u.userRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

// SetBlocked blocks or unblocks a user
func (u *UserUsecase) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	if err := u.userRepo.SetBlocked(ctx, id, blocked); err != nil {
		return err
	}
	logger.Info(ctx, "user blocked flag changed", zap.String("user_id", id.String()), zap.Bool("blocked", blocked))
	return nil
}

// Delete removes a user by explicit admin action
func (u *UserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "user deleted", zap.String("user_id", id.String()))
	return nil
}
