package repositories

import (
	"context"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
)

// OTPRepository defines one-time-password record operations. Records are
// keyed by (email, purpose); Upsert replaces any existing record for the
// key so at most one code per key is ever active.
type OTPRepository interface {
	Upsert(ctx context.Context, code *entities.OTPCode) error
	Get(ctx context.Context, email string, purpose entities.OTPPurpose) (*entities.OTPCode, error)
	MarkUsed(ctx context.Context, email string, purpose entities.OTPPurpose) error
	Delete(ctx context.Context, email string, purpose entities.OTPPurpose) error
}
