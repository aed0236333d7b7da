package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/response"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
)

// OTPHandler handles verification-code endpoints used by the platform's
// end users (email verification, password reset, delivery confirmation).
type OTPHandler struct {
	otpUsecase *usecases.OTPUsecase
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(otpUsecase *usecases.OTPUsecase) *OTPHandler {
	return &OTPHandler{otpUsecase: otpUsecase}
}

// Issue generates and emails a verification code
// POST /api/v1/otp/issue
func (h *OTPHandler) Issue(c *gin.Context) {
	var input entities.IssueOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpUsecase.Issue(c.Request.Context(), input.Email, entities.OTPPurpose(input.Purpose)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Verification code sent if the account exists",
	})
}

// Verify redeems a verification code
// POST /api/v1/otp/verify
func (h *OTPHandler) Verify(c *gin.Context) {
	var input entities.VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpUsecase.Verify(c.Request.Context(), input.Email, input.Code, entities.OTPPurpose(input.Purpose)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Code verified"})
}

// ResetPassword redeems a password-reset code and sets a new password
// POST /api/v1/otp/reset-password
func (h *OTPHandler) ResetPassword(c *gin.Context) {
	var input entities.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpUsecase.ResetPassword(c.Request.Context(), input.Email, input.Code, input.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}
