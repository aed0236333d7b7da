package usecases

import (
	"context"
	"time"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
)

// Mailer is the outbound email transport consumed by the workflows. The
// SMTP implementation lives in internal/infrastructure/mail; tests inject
// a stub.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string, purpose entities.OTPPurpose, ttl time.Duration) error
	SendWelcome(ctx context.Context, to, name string) error
	SendDeliveryUpdate(ctx context.Context, to, packageID, status, message string) error
	SendPromotional(ctx context.Context, to, subject, body string) error
	SendTest(ctx context.Context, to string) error
}
