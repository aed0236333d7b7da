package usecases

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/repositories"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// DisputeUsecase handles dispute filing and admin adjudication
type DisputeUsecase struct {
	disputeRepo repositories.DisputeRepository
	now         func() time.Time
}

// NewDisputeUsecase creates a new dispute usecase
func NewDisputeUsecase(disputeRepo repositories.DisputeRepository) *DisputeUsecase {
	return &DisputeUsecase{
		disputeRepo: disputeRepo,
		now:         time.Now,
	}
}

// File creates a dispute from a reporter-side payload
func (u *DisputeUsecase) File(ctx context.Context, input *entities.FileDisputeInput) (*entities.Dispute, error) {
	reason := entities.DisputeReason(input.Reason)
	if !reason.Valid() {
		return nil, domainerrors.BadRequest("unknown dispute reason")
	}

	priority := entities.DisputePriorityMedium
	if input.Priority != "" {
		priority = entities.DisputePriority(input.Priority)
		if !priority.Valid() {
			return nil, domainerrors.BadRequest("unknown dispute priority")
		}
	}

	reporterID, err := uuid.Parse(input.ReporterID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid reporter id")
	}
	reportedUserID, err := uuid.Parse(input.ReportedUserID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid reported user id")
	}
	bookingID, err := uuid.Parse(input.BookingID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid booking id")
	}

	now := u.now()
	dispute := &entities.Dispute{
		DisputeID:      generateDisputeID(now),
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		BookingID:      bookingID,
		Reason:         reason,
		Description:    input.Description,
		Evidence:       input.Evidence,
		Status:         entities.DisputeStatusPending,
		Priority:       priority,
		CreatedAt:      now,
		LastUpdated:    now,
	}
	if err := u.disputeRepo.Create(ctx, dispute); err != nil {
		return nil, err
	}

	logger.Info(ctx, "dispute filed", zap.String("dispute_id", dispute.DisputeID), zap.String("reason", string(reason)))
	return dispute, nil
}

// UpdateStatus writes the supplied fields and stamps lastUpdated. Any
// status jump is allowed; reaching resolved or dismissed stamps
// resolvedAt. Re-opening a closed dispute leaves the old resolvedAt in
// place.
func (u *DisputeUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateDisputeStatusInput) (*entities.Dispute, error) {
	status := entities.DisputeStatus(input.Status)
	if !status.Valid() {
		return nil, domainerrors.BadRequest("unknown dispute status")
	}
	if input.ResolutionType != nil && !entities.DisputeResolutionType(*input.ResolutionType).Valid() {
		return nil, domainerrors.BadRequest("unknown resolution type")
	}

	dispute, err := u.disputeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dispute.Status = status
	dispute.LastUpdated = u.now()
	if input.AdminNotes != nil {
		dispute.AdminNotes = null.StringFromPtr(input.AdminNotes)
	}
	if input.Resolution != nil {
		dispute.Resolution = null.StringFromPtr(input.Resolution)
	}
	if input.ResolutionType != nil {
		dispute.ResolutionType = null.StringFromPtr(input.ResolutionType)
	}
	if input.AdminID != nil {
		dispute.AdminID = null.StringFromPtr(input.AdminID)
	}
	if status.Terminal() {
		dispute.ResolvedAt = null.TimeFrom(u.now())
	}

	if err := u.disputeRepo.Update(ctx, dispute); err != nil {
		return nil, err
	}

	logger.Info(ctx, "dispute status updated", zap.String("dispute_id", dispute.DisputeID), zap.String("status", string(status)))
	return dispute, nil
}

// Assign hands the dispute to an admin and moves it under review,
// regardless of prior status.
func (u *DisputeUsecase) Assign(ctx context.Context, id uuid.UUID, adminID, adminName string) (*entities.Dispute, error) {
	dispute, err := u.disputeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dispute.AdminID = null.StringFrom(adminID)
	dispute.AssignedTo = null.StringFrom(adminName)
	dispute.Status = entities.DisputeStatusUnderReview
	dispute.LastUpdated = u.now()

	if err := u.disputeRepo.Update(ctx, dispute); err != nil {
		return nil, err
	}

	logger.Info(ctx, "dispute assigned", zap.String("dispute_id", dispute.DisputeID), zap.String("assigned_to", adminName))
	return dispute, nil
}

// Get returns a single dispute
func (u *DisputeUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Dispute, error) {
	return u.disputeRepo.GetByID(ctx, id)
}

// List returns disputes matching the filters, with pagination
func (u *DisputeUsecase) List(ctx context.Context, filter entities.DisputeListFilter, p utils.PaginationParams) ([]*entities.Dispute, int64, error) {
	if filter.Status != "" && filter.Status != "all" && !entities.DisputeStatus(filter.Status).Valid() {
		return nil, 0, domainerrors.BadRequest("unknown dispute status filter")
	}
	if filter.Priority != "" && filter.Priority != "all" && !entities.DisputePriority(filter.Priority).Valid() {
		return nil, 0, domainerrors.BadRequest("unknown dispute priority filter")
	}
	return u.disputeRepo.List(ctx, filter, p)
}

// Delete removes a dispute (admin escape hatch)
func (u *DisputeUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.disputeRepo.Delete(ctx, id)
}

// Stats returns per-status dispute counts
func (u *DisputeUsecase) Stats(ctx context.Context) (*entities.DisputeStats, error) {
	return u.disputeRepo.Stats(ctx)
}

func generateDisputeID(now time.Time) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000))
	return fmt.Sprintf("DSP-%d-%03d", now.Unix(), n.Int64())
}
