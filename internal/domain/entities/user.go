package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents platform user roles
type UserRole string

const (
	UserRoleSender   UserRole = "sender"
	UserRoleTraveler UserRole = "traveler"
	UserRoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the declared set.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleSender, UserRoleTraveler, UserRoleAdmin:
		return true
	}
	return false
}

// VerificationStatus is the per-user verification sub-record. Identity
// verification is driven by the KYC review workflow; email verification by
// the OTP workflow.
type VerificationStatus struct {
	EmailVerified       bool        `json:"emailVerified"`
	PhoneVerified       bool        `json:"phoneVerified"`
	IdentityVerified    bool        `json:"identityVerified"`
	IdentitySubmittedAt null.Time   `json:"identitySubmittedAt,omitempty"`
	IdentityVerifiedAt  null.Time   `json:"identityVerifiedAt,omitempty"`
	RejectionReason     null.String `json:"rejectionReason,omitempty"`
}

// User represents a platform user (sender, traveler or CRM admin)
type User struct {
	ID           uuid.UUID          `json:"id"`
	FullName     string             `json:"fullName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Country      string             `json:"country"`
	Role         UserRole           `json:"role"`
	Blocked      bool               `json:"blocked"`
	PasswordHash string             `json:"-"`
	Verification VerificationStatus `json:"verificationStatus"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// CreateUserInput represents input for creating a user by admin action
type CreateUserInput struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserInput represents a partial admin edit. Only the fields present
// in the payload are written back.
type UpdateUserInput struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Country  *string `json:"country,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UserListFilter holds the admin list-view filters: a case-insensitive
// substring search over name/email/phone plus an optional role filter.
type UserListFilter struct {
	Search  string
	Role    string
	Blocked *bool
}
