package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DisputeReason categorizes the incident being reported
type DisputeReason string

const (
	DisputeReasonNoShow        DisputeReason = "no_show"
	DisputeReasonDamaged       DisputeReason = "damaged_package"
	DisputeReasonLateDelivery  DisputeReason = "late_delivery"
	DisputeReasonInappropriate DisputeReason = "inappropriate_behavior"
	DisputeReasonPayment       DisputeReason = "payment_issue"
	DisputeReasonFraud         DisputeReason = "fraudulent_activity"
	DisputeReasonSafety        DisputeReason = "safety_concern"
	DisputeReasonOther         DisputeReason = "other"
)

// Valid reports whether the reason is one of the declared set.
func (r DisputeReason) Valid() bool {
	switch r {
	case DisputeReasonNoShow, DisputeReasonDamaged, DisputeReasonLateDelivery,
		DisputeReasonInappropriate, DisputeReasonPayment, DisputeReasonFraud,
		DisputeReasonSafety, DisputeReasonOther:
		return true
	}
	return false
}

// DisputeStatus represents the adjudication state
type DisputeStatus string

const (
	DisputeStatusPending     DisputeStatus = "pending"
	DisputeStatusUnderReview DisputeStatus = "under_review"
	DisputeStatusResolved    DisputeStatus = "resolved"
	DisputeStatusDismissed   DisputeStatus = "dismissed"
	DisputeStatusEscalated   DisputeStatus = "escalated"
)

// Valid reports whether the status is one of the declared set.
func (s DisputeStatus) Valid() bool {
	switch s {
	case DisputeStatusPending, DisputeStatusUnderReview, DisputeStatusResolved,
		DisputeStatusDismissed, DisputeStatusEscalated:
		return true
	}
	return false
}

// Terminal reports whether the status closes the dispute and stamps
// resolvedAt.
func (s DisputeStatus) Terminal() bool {
	return s == DisputeStatusResolved || s == DisputeStatusDismissed
}

// DisputePriority orders the review queue
type DisputePriority string

const (
	DisputePriorityLow      DisputePriority = "low"
	DisputePriorityMedium   DisputePriority = "medium"
	DisputePriorityHigh     DisputePriority = "high"
	DisputePriorityCritical DisputePriority = "critical"
)

// Valid reports whether the priority is one of the declared set.
func (p DisputePriority) Valid() bool {
	switch p {
	case DisputePriorityLow, DisputePriorityMedium, DisputePriorityHigh, DisputePriorityCritical:
		return true
	}
	return false
}

// DisputeResolutionType describes the outcome of a resolved dispute
type DisputeResolutionType string

const (
	ResolutionRefundIssued     DisputeResolutionType = "refund_issued"
	ResolutionWarningIssued    DisputeResolutionType = "warning_issued"
	ResolutionAccountSuspended DisputeResolutionType = "account_suspended"
	ResolutionNoAction         DisputeResolutionType = "no_action"
	ResolutionOther            DisputeResolutionType = "other"
)

// Valid reports whether the resolution type is one of the declared set.
func (r DisputeResolutionType) Valid() bool {
	switch r {
	case ResolutionRefundIssued, ResolutionWarningIssued, ResolutionAccountSuspended,
		ResolutionNoAction, ResolutionOther:
		return true
	}
	return false
}

// Dispute is a user-filed complaint against another user tied to a booking
type Dispute struct {
	ID             uuid.UUID       `json:"id"`
	DisputeID      string          `json:"disputeId"` // display ID, e.g. DSP-1700000000-042
	ReporterID     uuid.UUID       `json:"reporterId"`
	ReportedUserID uuid.UUID       `json:"reportedUserId"`
	BookingID      uuid.UUID       `json:"bookingId"`
	Reason         DisputeReason   `json:"reason"`
	Description    string          `json:"description"`
	Evidence       []string        `json:"evidence"` // base64 images
	Status         DisputeStatus   `json:"status"`
	Priority       DisputePriority `json:"priority"`
	AdminID        null.String     `json:"adminId,omitempty"`
	AssignedTo     null.String     `json:"assignedTo,omitempty"`
	AdminNotes     null.String     `json:"adminNotes,omitempty"`
	Resolution     null.String     `json:"resolution,omitempty"`
	ResolutionType null.String     `json:"resolutionType,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdated    time.Time       `json:"lastUpdated"`
	ResolvedAt     null.Time       `json:"resolvedAt,omitempty"`
}

// FileDisputeInput is the reporter-side creation payload
type FileDisputeInput struct {
	ReporterID     string   `json:"reporterId" binding:"required,uuid"`
	ReportedUserID string   `json:"reportedUserId" binding:"required,uuid"`
	BookingID      string   `json:"bookingId" binding:"required,uuid"`
	Reason         string   `json:"reason" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Evidence       []string `json:"evidence"`
	Priority       string   `json:"priority"`
}

// UpdateDisputeStatusInput is the admin status-change payload. Any status
// jump is allowed; the enum itself is still validated.
type UpdateDisputeStatusInput struct {
	Status         string  `json:"status" binding:"required"`
	AdminNotes     *string `json:"adminNotes,omitempty"`
	Resolution     *string `json:"resolution,omitempty"`
	ResolutionType *string `json:"resolutionType,omitempty"`
	AdminID        *string `json:"adminId,omitempty"`
}

// AssignDisputeInput assigns a dispute to an admin for review
type AssignDisputeInput struct {
	AdminID   string `json:"adminId" binding:"required"`
	AdminName string `json:"adminName" binding:"required"`
}

// DisputeStats holds per-status dispute counts
type DisputeStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"underReview"`
	Resolved    int64 `json:"resolved"`
	Escalated   int64 `json:"escalated"`
	Dismissed   int64 `json:"dismissed"`
}

// DisputeListFilter holds the admin list-view filters
type DisputeListFilter struct {
	Status   string
	Priority string
	Search   string
}
