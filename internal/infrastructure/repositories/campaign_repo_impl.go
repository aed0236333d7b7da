package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/models"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// CampaignRepository records promotional-email batches
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create records a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *entities.EmailCampaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	m := campaignToModel(campaign)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// Update writes the send-progress fields back
func (r *CampaignRepository) Update(ctx context.Context, campaign *entities.EmailCampaign) error {
	m := campaignToModel(campaign)
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.EmailCampaign{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]interface{}{
			"sent_count":   m.SentCount,
			"failed_count": m.FailedCount,
			"status":       m.Status,
			"completed_at": m.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists campaigns with pagination
func (r *CampaignRepository) List(ctx context.Context, p utils.PaginationParams) ([]*entities.EmailCampaign, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.EmailCampaign{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaignModels []models.EmailCampaign
	if err := query.Order("created_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&campaignModels).Error; err != nil {
		return nil, 0, err
	}

	campaigns := make([]*entities.EmailCampaign, 0, len(campaignModels))
	for i := range campaignModels {
		campaigns = append(campaigns, campaignToEntity(&campaignModels[i]))
	}
	return campaigns, total, nil
}

func campaignToModel(c *entities.EmailCampaign) *models.EmailCampaign {
	m := &models.EmailCampaign{
		ID:             c.ID,
		Subject:        c.Subject,
		Body:           c.Body,
		RecipientCount: c.RecipientCount,
		SentCount:      c.SentCount,
		FailedCount:    c.FailedCount,
		Status:         string(c.Status),
		CreatedBy:      c.CreatedBy,
		CreatedAt:      c.CreatedAt,
	}
	if !c.CompletedAt.IsZero() {
		completed := c.CompletedAt
		m.CompletedAt = &completed
	}
	return m
}

func campaignToEntity(m *models.EmailCampaign) *entities.EmailCampaign {
	c := &entities.EmailCampaign{
		ID:             m.ID,
		Subject:        m.Subject,
		Body:           m.Body,
		RecipientCount: m.RecipientCount,
		SentCount:      m.SentCount,
		FailedCount:    m.FailedCount,
		Status:         entities.CampaignStatus(m.Status),
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
	if m.CompletedAt != nil {
		c.CompletedAt = *m.CompletedAt
	}
	return c
}
