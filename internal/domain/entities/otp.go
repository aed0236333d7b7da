package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OTPPurpose tags what an issued code may be redeemed for
type OTPPurpose string

const (
	OTPPurposeEmailVerification OTPPurpose = "email_verification"
	OTPPurposePasswordReset     OTPPurpose = "password_reset"
	OTPPurposeCRMLogin          OTPPurpose = "crm_login"
	OTPPurposeDelivery          OTPPurpose = "delivery_confirmation"
)

// Valid reports whether the purpose is one of the declared set.
func (p OTPPurpose) Valid() bool {
	switch p {
	case OTPPurposeEmailVerification, OTPPurposePasswordReset, OTPPurposeCRMLogin, OTPPurposeDelivery:
		return true
	}
	return false
}

// OTPCode is an ephemeral credential keyed by (email, purpose). One active
// code per key: issuing a new code overwrites the previous record.
type OTPCode struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Code      string     `json:"-"`
	Purpose   OTPPurpose `json:"purpose"`
	ExpiresAt time.Time  `json:"expiresAt"`
	Used      bool       `json:"used"`
	UsedAt    null.Time  `json:"usedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Expired reports whether the code is past its TTL at the given instant.
func (o *OTPCode) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// IssueOTPInput represents a code-issuance request
type IssueOTPInput struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose" binding:"required"`
}

// VerifyOTPInput represents a code-verification request
type VerifyOTPInput struct {
	Email   string `json:"email" binding:"required,email"`
	Code    string `json:"code" binding:"required,len=6"`
	Purpose string `json:"purpose" binding:"required"`
}

// ResetPasswordInput redeems a password-reset code for a new credential
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
