package entities

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents the state of a promotional-email batch
type CampaignStatus string

const (
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

// EmailCampaign records one promotional batch send
type EmailCampaign struct {
	ID             uuid.UUID      `json:"id"`
	Subject        string         `json:"subject"`
	Body           string         `json:"body"`
	RecipientCount int            `json:"recipientCount"`
	SentCount      int            `json:"sentCount"`
	FailedCount    int            `json:"failedCount"`
	Status         CampaignStatus `json:"status"`
	CreatedBy      string         `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	CompletedAt    time.Time      `json:"completedAt"`
}

// SendPromotionalInput is the admin-only batch-send payload
type SendPromotionalInput struct {
	Subject    string   `json:"subject" binding:"required"`
	Body       string   `json:"body" binding:"required"`
	Recipients []string `json:"recipients" binding:"required,min=1,dive,email"`
}

// SendWelcomeInput triggers the signup welcome email
type SendWelcomeInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// SendDeliveryUpdateInput notifies a sender of delivery progress
type SendDeliveryUpdateInput struct {
	Email     string `json:"email" binding:"required,email"`
	PackageID string `json:"packageId" binding:"required,uuid"`
	Status    string `json:"status" binding:"required"`
	Message   string `json:"message"`
}
