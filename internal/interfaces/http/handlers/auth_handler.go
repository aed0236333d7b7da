package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/response"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/logger"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/redis"
)

const sessionTTL = 24 * time.Hour

// AuthHandler handles CRM admin authentication endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	sessionStore *redis.SessionStore
}

// NewAuthHandler creates a new auth handler. sessionStore may be nil when
// session persistence is disabled.
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionStore *redis.SessionStore) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
	}
}

// Login checks credentials and emails a login code
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.Login(c.Request.Context(), input.Email, input.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Verification code sent to your email",
	})
}

// VerifyOTP redeems the login code for a token pair
// POST /api/v1/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required,len=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, user, err := h.authUsecase.VerifyLogin(c.Request.Context(), input.Email, input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	sessionID := uuid.New().String()
	if h.sessionStore != nil {
		err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}, sessionTTL)
		if err != nil {
			// The token pair is still valid without the session record.
			logger.Warn(c.Request.Context(), "session persist failed", zap.Error(err))
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"sessionId":    sessionID,
		"user": gin.H{
			"id":       user.ID,
			"fullName": user.FullName,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Refresh exchanges a refresh token for a fresh pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authUsecase.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Logout drops the server-side session record
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.sessionStore != nil {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), input.SessionID); err != nil {
			logger.Warn(c.Request.Context(), "session delete failed", zap.Error(err))
		}
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}
