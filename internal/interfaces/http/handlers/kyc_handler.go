package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/middleware"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/response"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// KYCHandler handles identity-verification review endpoints
type KYCHandler struct {
	kycUsecase *usecases.KYCUsecase
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycUsecase *usecases.KYCUsecase) *KYCHandler {
	return &KYCHandler{kycUsecase: kycUsecase}
}

// Submit files or refreshes an application for a user
// POST /api/v1/kyc/:userId/submit
func (h *KYCHandler) Submit(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input entities.SubmitKYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.kycUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, app)
}

// List returns applications filtered by status
// GET /api/v1/admin/kyc
func (h *KYCHandler) List(c *gin.Context) {
	p := paginationFromQuery(c)
	apps, total, err := h.kycUsecase.List(c.Request.Context(), c.Query("status"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if apps == nil {
		apps = []*entities.KYCApplication{}
	}
	response.Paginated(c, http.StatusOK, apps, utils.CalculateMeta(total, p.Page, p.Limit))
}

// Get returns a single application
// GET /api/v1/admin/kyc/:userId
func (h *KYCHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	app, err := h.kycUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// Counts returns the per-status application counts
// GET /api/v1/admin/kyc/counts
func (h *KYCHandler) Counts(c *gin.Context) {
	counts, err := h.kycUsecase.Counts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, counts)
}

// Approve approves an application
// POST /api/v1/admin/kyc/:userId/approve
func (h *KYCHandler) Approve(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	reviewer, _ := middleware.GetUserEmail(c)
	app, err := h.kycUsecase.Approve(c.Request.Context(), userID, reviewer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// Reject rejects an application with a mandatory reason
// POST /api/v1/admin/kyc/:userId/reject
func (h *KYCHandler) Reject(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input entities.RejectKYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewer, _ := middleware.GetUserEmail(c)
	app, err := h.kycUsecase.Reject(c.Request.Context(), userID, input.Reason, reviewer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}
