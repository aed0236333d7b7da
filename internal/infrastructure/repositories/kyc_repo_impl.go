package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/models"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// KYCRepository implements KYC application operations
type KYCRepository struct {
	db *gorm.DB
}

// NewKYCRepository creates a new KYC repository
func NewKYCRepository(db *gorm.DB) *KYCRepository {
	return &KYCRepository{db: db}
}

// Upsert writes the application keyed by user ID
func (r *KYCRepository) Upsert(ctx context.Context, app *entities.KYCApplication) error {
	m := kycToModel(app)
	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "selfie_image", "front_image", "back_image",
			"full_name", "date_of_birth", "gender", "phone", "address",
			"submitted_at", "updated_at", "rejection_reason",
		}),
	}).Create(m).Error
}

// GetByUserID loads the application for a user
func (r *KYCRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYCApplication, error) {
	var m models.KYCApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return kycToEntity(&m), nil
}

// List lists applications filtered by status ("" or "all" means no filter)
func (r *KYCRepository) List(ctx context.Context, status string, p utils.PaginationParams) ([]*entities.KYCApplication, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.KYCApplication{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appModels []models.KYCApplication
	if err := query.Order("submitted_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&appModels).Error; err != nil {
		return nil, 0, err
	}

	apps := make([]*entities.KYCApplication, 0, len(appModels))
	for i := range appModels {
		apps = append(apps, kycToEntity(&appModels[i]))
	}
	return apps, total, nil
}

// UpdateReview writes the review outcome fields
func (r *KYCRepository) UpdateReview(ctx context.Context, app *entities.KYCApplication) error {
	updates := map[string]interface{}{
		"status":           string(app.Status),
		"updated_at":       app.Audit.UpdatedAt,
		"reviewed_at":      app.Audit.ReviewedAt.Ptr(),
		"reviewed_by":      app.Audit.ReviewedBy.Ptr(),
		"rejection_reason": app.RejectionReason.Ptr(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.KYCApplication{}).
		Where("user_id = ?", app.UserID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Counts aggregates applications per status server-side
func (r *KYCRepository) Counts(ctx context.Context) (*entities.KYCCounts, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.KYCApplication{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &entities.KYCCounts{}
	for _, rw := range rows {
		counts.Total += rw.N
		switch entities.KYCStatus(rw.Status) {
		case entities.KYCStatusPending:
			counts.Pending = rw.N
		case entities.KYCStatusSubmitted:
			counts.Submitted = rw.N
		case entities.KYCStatusApproved:
			counts.Approved = rw.N
		case entities.KYCStatusRejected:
			counts.Rejected = rw.N
		}
	}
	return counts, nil
}

func kycToModel(a *entities.KYCApplication) *models.KYCApplication {
	return &models.KYCApplication{
		UserID:          a.UserID,
		Status:          string(a.Status),
		SelfieImage:     a.Documents.Selfie,
		FrontImage:      a.Documents.FrontSide,
		BackImage:       a.Documents.BackSide,
		FullName:        a.PersonalInfo.FullName,
		DateOfBirth:     a.PersonalInfo.DateOfBirth,
		Gender:          a.PersonalInfo.Gender,
		Phone:           a.PersonalInfo.Phone,
		Address:         a.PersonalInfo.Address,
		SubmittedAt:     a.Audit.SubmittedAt,
		UpdatedAt:       a.Audit.UpdatedAt,
		ReviewedAt:      a.Audit.ReviewedAt.Ptr(),
		ReviewedBy:      a.Audit.ReviewedBy.Ptr(),
		RejectionReason: a.RejectionReason.Ptr(),
	}
}

func kycToEntity(m *models.KYCApplication) *entities.KYCApplication {
	return &entities.KYCApplication{
		UserID: m.UserID,
		Status: entities.KYCStatus(m.Status),
		Documents: entities.KYCDocuments{
			Selfie:    m.SelfieImage,
			FrontSide: m.FrontImage,
			BackSide:  m.BackImage,
		},
		PersonalInfo: entities.KYCPersonalInfo{
			FullName:    m.FullName,
			DateOfBirth: m.DateOfBirth,
			Gender:      m.Gender,
			Phone:       m.Phone,
			Address:     m.Address,
		},
		Audit: entities.KYCAudit{
			SubmittedAt: m.SubmittedAt,
			UpdatedAt:   m.UpdatedAt,
			ReviewedAt:  null.TimeFromPtr(m.ReviewedAt),
			ReviewedBy:  null.StringFromPtr(m.ReviewedBy),
		},
		RejectionReason: null.StringFromPtr(m.RejectionReason),
	}
}
