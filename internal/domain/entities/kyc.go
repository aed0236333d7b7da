package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KYCStatus represents the review state of a KYC application
type KYCStatus string

const (
	KYCStatusPending   KYCStatus = "pending"
	KYCStatusSubmitted KYCStatus = "submitted"
	KYCStatusApproved  KYCStatus = "approved"
	KYCStatusRejected  KYCStatus = "rejected"
)

// Valid reports whether the status is one of the declared set.
func (s KYCStatus) Valid() bool {
	switch s {
	case KYCStatusPending, KYCStatusSubmitted, KYCStatusApproved, KYCStatusRejected:
		return true
	}
	return false
}

// KYCDocuments holds the base64-encoded identity document images
type KYCDocuments struct {
	Selfie    string `json:"selfie"`
	FrontSide string `json:"frontSide"`
	BackSide  string `json:"backSide"`
}

// KYCPersonalInfo is the applicant snapshot captured at submission time
type KYCPersonalInfo struct {
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// KYCAudit tracks submission and review stamps
type KYCAudit struct {
	SubmittedAt time.Time   `json:"submittedAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	ReviewedAt  null.Time   `json:"reviewedAt,omitempty"`
	ReviewedBy  null.String `json:"reviewedBy,omitempty"`
}

// KYCApplication is one identity-verification application per user; the
// user ID is the key.
type KYCApplication struct {
	UserID          uuid.UUID       `json:"userId"`
	Status          KYCStatus       `json:"status"`
	Documents       KYCDocuments    `json:"documents"`
	PersonalInfo    KYCPersonalInfo `json:"personalInfo"`
	Audit           KYCAudit        `json:"audit"`
	RejectionReason null.String     `json:"rejectionReason,omitempty"`
}

// SubmitKYCInput is the applicant submission payload
type SubmitKYCInput struct {
	Documents    KYCDocuments    `json:"documents" binding:"required"`
	PersonalInfo KYCPersonalInfo `json:"personalInfo" binding:"required"`
}

// RejectKYCInput carries the mandatory rejection reason
type RejectKYCInput struct {
	Reason string `json:"reason" binding:"required"`
}

// KYCCounts holds the per-status application counts for the review queue
type KYCCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Submitted int64 `json:"submitted"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
}
