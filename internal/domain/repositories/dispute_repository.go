package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// DisputeRepository defines dispute data operations
type DisputeRepository interface {
	Create(ctx context.Context, dispute *entities.Dispute) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Dispute, error)
	List(ctx context.Context, filter entities.DisputeListFilter, p utils.PaginationParams) ([]*entities.Dispute, int64, error)
	Update(ctx context.Context, dispute *entities.Dispute) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*entities.DisputeStats, error)
}
