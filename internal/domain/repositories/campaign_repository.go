package repositories

import (
	"context"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// CampaignRepository records promotional-email batches
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entities.EmailCampaign) error
	Update(ctx context.Context, campaign *entities.EmailCampaign) error
	List(ctx context.Context, p utils.PaginationParams) ([]*entities.EmailCampaign, int64, error)
}
