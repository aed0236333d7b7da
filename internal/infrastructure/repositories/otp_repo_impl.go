package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/models"
)

// OTPRepository implements one-time-password record operations
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Upsert writes the record for (email, purpose), replacing any existing
// code so only one is ever active for the key.
func (r *OTPRepository) Upsert(ctx context.Context, code *entities.OTPCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	m := &models.OTPCode{
		ID:        code.ID,
		Email:     code.Email,
		Purpose:   string(code.Purpose),
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		Used:      code.Used,
		UsedAt:    code.UsedAt.Ptr(),
		CreatedAt: code.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}, {Name: "purpose"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "used", "used_at", "created_at"}),
	}).Create(m).Error
}

// Get loads the record for (email, purpose)
func (r *OTPRepository) Get(ctx context.Context, email string, purpose entities.OTPPurpose) (*entities.OTPCode, error) {
	var m models.OTPCode
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("email = ? AND purpose = ?", email, string(purpose)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.OTPCode{
		ID:        m.ID,
		Email:     m.Email,
		Code:      m.Code,
		Purpose:   entities.OTPPurpose(m.Purpose),
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		UsedAt:    null.TimeFromPtr(m.UsedAt),
		CreatedAt: m.CreatedAt,
	}, nil
}

// MarkUsed transitions the record to used exactly once and stamps used_at.
// A record that is already used does not match the predicate, so a second
// call reports not found.
func (r *OTPRepository) MarkUsed(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.OTPCode{}).
		Where("email = ? AND purpose = ? AND used = ?", email, string(purpose), false).
		Updates(map[string]interface{}{"used": true, "used_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the record for (email, purpose)
func (r *OTPRepository) Delete(ctx context.Context, email string, purpose entities.OTPPurpose) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("email = ? AND purpose = ?", email, string(purpose)).
		Delete(&models.OTPCode{}).Error
}
