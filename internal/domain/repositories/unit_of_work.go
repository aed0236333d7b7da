package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic multi-repository writes.
// The KYC review dual-write (application status + user verification flag)
// runs inside one unit so a failure cannot leave the pair half-updated.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
