package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// promotionalSendDelay spaces out batch sends so the SMTP relay is never
// hit with a burst.
const promotionalSendDelay = 100 * time.Millisecond

// CampaignUsecase drives the transactional and promotional email
// endpoints. Promotional batches run sequentially and record per-batch
// sent/failed counts in the campaigns table.
type CampaignUsecase struct {
	campaignRepo repositories.CampaignRepository
	mailer       Mailer
	now          func() time.Time
	sleep        func(time.Duration)
}

// NewCampaignUsecase creates a new campaign usecase
func NewCampaignUsecase(campaignRepo repositories.CampaignRepository, mailer Mailer) *CampaignUsecase {
	return &CampaignUsecase{
		campaignRepo: campaignRepo,
		mailer:       mailer,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// SendWelcome sends the signup welcome email
func (u *CampaignUsecase) SendWelcome(ctx context.Context, input *entities.SendWelcomeInput) error {
	if err := u.mailer.SendWelcome(ctx, input.Email, input.Name); err != nil {
		logger.Error(ctx, "welcome email failed",
			zap.String("email", input.Email), zap.Error(err))
		return domainerrors.MailSendFailed(err)
	}
	return nil
}

// SendDeliveryUpdate notifies a sender about delivery progress
func (u *CampaignUsecase) SendDeliveryUpdate(ctx context.Context, input *entities.SendDeliveryUpdateInput) error {
	if err := u.mailer.SendDeliveryUpdate(ctx, input.Email, input.PackageID, input.Status, input.Message); err != nil {
		logger.Error(ctx, "delivery update email failed",
			zap.String("email", input.Email), zap.String("package_id", input.PackageID), zap.Error(err))
		return domainerrors.MailSendFailed(err)
	}
	return nil
}

// SendTest sends a short probe message to verify SMTP configuration
func (u *CampaignUsecase) SendTest(ctx context.Context, to string) error {
	if err := u.mailer.SendTest(ctx, to); err != nil {
		return domainerrors.MailSendFailed(err)
	}
	return nil
}

// SendPromotional delivers one message per recipient, sequentially with a
// fixed delay between sends. A failed recipient is counted and skipped;
// the batch keeps going. The campaign row is written before the first
// send so a crash mid-batch still leaves a record.
func (u *CampaignUsecase) SendPromotional(ctx context.Context, createdBy string, input *entities.SendPromotionalInput) (*entities.EmailCampaign, error) {
	if len(input.Recipients) == 0 {
		return nil, domainerrors.BadRequest("recipients must not be empty")
	}

	campaign := &entities.EmailCampaign{
		ID:             uuid.New(),
		Subject:        input.Subject,
		Body:           input.Body,
		RecipientCount: len(input.Recipients),
		Status:         entities.CampaignStatusSending,
		CreatedBy:      createdBy,
		CreatedAt:      u.now(),
	}
	if err := u.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	for i, recipient := range input.Recipients {
		if i > 0 {
			u.sleep(promotionalSendDelay)
		}
		if err := u.mailer.SendPromotional(ctx, recipient, input.Subject, input.Body); err != nil {
			campaign.FailedCount++
			logger.Warn(ctx, "promotional send failed",
				zap.String("campaign_id", campaign.ID.String()),
				zap.String("recipient", recipient), zap.Error(err))
			continue
		}
		campaign.SentCount++
	}

	campaign.CompletedAt = u.now()
	if campaign.SentCount == 0 {
		campaign.Status = entities.CampaignStatusFailed
	} else {
		campaign.Status = entities.CampaignStatusCompleted
	}
	if err := u.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	logger.Info(ctx, "promotional campaign finished",
		zap.String("campaign_id", campaign.ID.String()),
		zap.Int("sent", campaign.SentCount),
		zap.Int("failed", campaign.FailedCount))
	return campaign, nil
}

// ListCampaigns returns a page of past promotional batches
func (u *CampaignUsecase) ListCampaigns(ctx context.Context, p utils.PaginationParams) ([]*entities.EmailCampaign, int64, error) {
	return u.campaignRepo.List(ctx, p)
}
