package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/models"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := userToModel(user)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// List lists users with search/role/blocked filters and pagination
func (r *UserRepository) List(ctx context.Context, filter entities.UserListFilter, p utils.PaginationParams) ([]*entities.User, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{})

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(full_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR phone LIKE ?",
			term, term, term,
		)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Blocked != nil {
		query = query.Where("blocked = ?", *filter.Blocked)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var userModels []models.User
	if err := query.Order("created_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, total, nil
}

// Update applies a partial update and stamps updated_at
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetBlocked flips the blocked flag
func (r *UserRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	return r.Update(ctx, id, map[string]interface{}{"blocked": blocked})
}

// SetEmailVerified marks the user's email address verified
func (r *UserRepository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	return r.Update(ctx, id, map[string]interface{}{"email_verified": true})
}

// SetIdentityVerification mirrors the KYC review outcome onto the user
// record: verified sets the flag and stamps identity_verified_at; a
// rejection clears the flag and records the reason.
func (r *UserRepository) SetIdentityVerification(ctx context.Context, id uuid.UUID, verified bool, reason *string) error {
	updates := map[string]interface{}{
		"identity_verified": verified,
		"rejection_reason":  reason,
	}
	if verified {
		updates["identity_verified_at"] = time.Now()
	}
	return r.Update(ctx, id, updates)
}

// UpdatePasswordHash replaces the stored credential
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.Update(ctx, id, map[string]interface{}{"password_hash": hash})
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:                  u.ID,
		FullName:            u.FullName,
		Email:               u.Email,
		Phone:               u.Phone,
		Address:             u.Address,
		City:                u.City,
		Country:             u.Country,
		Role:                string(u.Role),
		Blocked:             u.Blocked,
		PasswordHash:        u.PasswordHash,
		EmailVerified:       u.Verification.EmailVerified,
		PhoneVerified:       u.Verification.PhoneVerified,
		IdentityVerified:    u.Verification.IdentityVerified,
		IdentitySubmittedAt: u.Verification.IdentitySubmittedAt.Ptr(),
		IdentityVerifiedAt:  u.Verification.IdentityVerifiedAt.Ptr(),
		RejectionReason:     u.Verification.RejectionReason.Ptr(),
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		City:         m.City,
		Country:      m.Country,
		Role:         entities.UserRole(m.Role),
		Blocked:      m.Blocked,
		PasswordHash: m.PasswordHash,
		Verification: entities.VerificationStatus{
			EmailVerified:       m.EmailVerified,
			PhoneVerified:       m.PhoneVerified,
			IdentityVerified:    m.IdentityVerified,
			IdentitySubmittedAt: null.TimeFromPtr(m.IdentitySubmittedAt),
			IdentityVerifiedAt:  null.TimeFromPtr(m.IdentityVerifiedAt),
			RejectionReason:     null.StringFromPtr(m.RejectionReason),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
