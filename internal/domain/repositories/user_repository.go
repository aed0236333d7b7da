package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, filter entities.UserListFilter, p utils.PaginationParams) ([]*entities.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	SetEmailVerified(ctx context.Context, id uuid.UUID) error
	SetIdentityVerification(ctx context.Context, id uuid.UUID, verified bool, reason *string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
