package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/middleware"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/response"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// EmailHandler handles the transactional and promotional email endpoints
type EmailHandler struct {
	campaignUsecase *usecases.CampaignUsecase
	otpUsecase      *usecases.OTPUsecase
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(campaignUsecase *usecases.CampaignUsecase, otpUsecase *usecases.OTPUsecase) *EmailHandler {
	return &EmailHandler{
		campaignUsecase: campaignUsecase,
		otpUsecase:      otpUsecase,
	}
}

// SendWelcome sends the signup welcome email
// POST /api/v1/email/send-welcome-email
func (h *EmailHandler) SendWelcome(c *gin.Context) {
	var input entities.SendWelcomeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.campaignUsecase.SendWelcome(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Welcome email sent"})
}

// SendDeliveryUpdate notifies a sender of delivery progress
// POST /api/v1/email/send-delivery-update-email
func (h *EmailHandler) SendDeliveryUpdate(c *gin.Context) {
	var input entities.SendDeliveryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.campaignUsecase.SendDeliveryUpdate(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Delivery update email sent"})
}

// SendDeliveryOTP emails a delivery-confirmation code to the recipient
// POST /api/v1/email/send-delivery-otp-email
func (h *EmailHandler) SendDeliveryOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpUsecase.Issue(c.Request.Context(), input.Email, entities.OTPPurposeDelivery); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Delivery confirmation code sent"})
}

// SendPromotional runs an admin-only batch send
// POST /api/v1/admin/email/send-promotional-email
func (h *EmailHandler) SendPromotional(c *gin.Context) {
	var input entities.SendPromotionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy, _ := middleware.GetUserEmail(c)
	campaign, err := h.campaignUsecase.SendPromotional(c.Request.Context(), createdBy, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, campaign)
}

// ListCampaigns returns past promotional batches
// GET /api/v1/admin/email/campaigns
func (h *EmailHandler) ListCampaigns(c *gin.Context) {
	p := paginationFromQuery(c)
	campaigns, total, err := h.campaignUsecase.ListCampaigns(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if campaigns == nil {
		campaigns = []*entities.EmailCampaign{}
	}
	response.Paginated(c, http.StatusOK, campaigns, utils.CalculateMeta(total, p.Page, p.Limit))
}

// TestConfig sends a probe message to verify SMTP settings
// POST /api/v1/admin/email/test-email-config
func (h *EmailHandler) TestConfig(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.campaignUsecase.SendTest(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Test email sent"})
}
