package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// KYCRepository defines KYC application operations. Applications are keyed
// by the applicant's user ID.
type KYCRepository interface {
	Upsert(ctx context.Context, app *entities.KYCApplication) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYCApplication, error)
	List(ctx context.Context, status string, p utils.PaginationParams) ([]*entities.KYCApplication, int64, error)
	UpdateReview(ctx context.Context, app *entities.KYCApplication) error
	Counts(ctx context.Context) (*entities.KYCCounts, error)
}
