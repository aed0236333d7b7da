package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/infrastructure/models"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// DisputeRepository implements dispute data operations
type DisputeRepository struct {
	db *gorm.DB
}

// NewDisputeRepository creates a new dispute repository
func NewDisputeRepository(db *gorm.DB) *DisputeRepository {
	return &DisputeRepository{db: db}
}

// Create creates a new dispute
func (r *DisputeRepository) Create(ctx context.Context, dispute *entities.Dispute) error {
	if dispute.ID == uuid.Nil {
		dispute.ID = uuid.New()
	}
	m, err := disputeToModel(dispute)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a dispute by ID
func (r *DisputeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Dispute, error) {
	var m models.Dispute
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return disputeToEntity(&m)
}

// List lists disputes with status/priority/search filters and pagination
func (r *DisputeRepository) List(ctx context.Context, filter entities.DisputeListFilter, p utils.PaginationParams) ([]*entities.Dispute, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Dispute{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" && filter.Priority != "all" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("LOWER(dispute_id) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var disputeModels []models.Dispute
	if err := query.Order("created_at DESC").Limit(p.Limit).Offset(p.CalculateOffset()).Find(&disputeModels).Error; err != nil {
		return nil, 0, err
	}

	disputes := make([]*entities.Dispute, 0, len(disputeModels))
	for i := range disputeModels {
		d, err := disputeToEntity(&disputeModels[i])
		if err != nil {
			return nil, 0, err
		}
		disputes = append(disputes, d)
	}
	return disputes, total, nil
}

// Update writes the full dispute state back
func (r *DisputeRepository) Update(ctx context.Context, dispute *entities.Dispute) error {
	m, err := disputeToModel(dispute)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"status":          m.Status,
		"priority":        m.Priority,
		"admin_id":        m.AdminID,
		"assigned_to":     m.AssignedTo,
		"admin_notes":     m.AdminNotes,
		"resolution":      m.Resolution,
		"resolution_type": m.ResolutionType,
		"last_updated":    m.LastUpdated,
		"resolved_at":     m.ResolvedAt,
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Dispute{}).
		Where("id = ?", dispute.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a dispute (admin escape hatch)
func (r *DisputeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Dispute{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Stats aggregates disputes per status server-side
func (r *DisputeRepository) Stats(ctx context.Context) (*entities.DisputeStats, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Dispute{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &entities.DisputeStats{}
	for _, rw := range rows {
		stats.Total += rw.N
		switch entities.DisputeStatus(rw.Status) {
		case entities.DisputeStatusPending:
			stats.Pending = rw.N
		case entities.DisputeStatusUnderReview:
			stats.UnderReview = rw.N
		case entities.DisputeStatusResolved:
			stats.Resolved = rw.N
		case entities.DisputeStatusEscalated:
			stats.Escalated = rw.N
		case entities.DisputeStatusDismissed:
			stats.Dismissed = rw.N
		}
	}
	return stats, nil
}

func disputeToModel(d *entities.Dispute) (*models.Dispute, error) {
	evidence, err := json.Marshal(d.Evidence)
	if err != nil {
		return nil, err
	}
	return &models.Dispute{
		ID:             d.ID,
		DisputeID:      d.DisputeID,
		ReporterID:     d.ReporterID,
		ReportedUserID: d.ReportedUserID,
		BookingID:      d.BookingID,
		Reason:         string(d.Reason),
		Description:    d.Description,
		Evidence:       string(evidence),
		Status:         string(d.Status),
		Priority:       string(d.Priority),
		AdminID:        d.AdminID.Ptr(),
		AssignedTo:     d.AssignedTo.Ptr(),
		AdminNotes:     d.AdminNotes.Ptr(),
		Resolution:     d.Resolution.Ptr(),
		ResolutionType: d.ResolutionType.Ptr(),
		CreatedAt:      d.CreatedAt,
		LastUpdated:    d.LastUpdated,
		ResolvedAt:     d.ResolvedAt.Ptr(),
	}, nil
}

func disputeToEntity(m *models.Dispute) (*entities.Dispute, error) {
	var evidence []string
	if m.Evidence != "" {
		if err := json.Unmarshal([]byte(m.Evidence), &evidence); err != nil {
			return nil, err
		}
	}
	return &entities.Dispute{
		ID:             m.ID,
		DisputeID:      m.DisputeID,
		ReporterID:     m.ReporterID,
		ReportedUserID: m.ReportedUserID,
		BookingID:      m.BookingID,
		Reason:         entities.DisputeReason(m.Reason),
		Description:    m.Description,
		Evidence:       evidence,
		Status:         entities.DisputeStatus(m.Status),
		Priority:       entities.DisputePriority(m.Priority),
		AdminID:        null.StringFromPtr(m.AdminID),
		AssignedTo:     null.StringFromPtr(m.AssignedTo),
		AdminNotes:     null.StringFromPtr(m.AdminNotes),
		Resolution:     null.StringFromPtr(m.Resolution),
		ResolutionType: null.StringFromPtr(m.ResolutionType),
		CreatedAt:      m.CreatedAt,
		LastUpdated:    m.LastUpdated,
		ResolvedAt:     null.TimeFromPtr(m.ResolvedAt),
	}, nil
}
