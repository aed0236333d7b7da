package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/response"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// DisputeHandler handles dispute filing and adjudication endpoints
type DisputeHandler struct {
	disputeUsecase *usecases.DisputeUsecase
}

// NewDisputeHandler creates a new dispute handler
func NewDisputeHandler(disputeUsecase *usecases.DisputeUsecase) *DisputeHandler {
	return &DisputeHandler{disputeUsecase: disputeUsecase}
}

// File creates a dispute from a reporter payload
// POST /api/v1/disputes
func (h *DisputeHandler) File(c *gin.Context) {
	var input entities.FileDisputeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.disputeUsecase.File(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, dispute)
}

// List returns disputes matching the filters
// GET /api/v1/admin/disputes
func (h *DisputeHandler) List(c *gin.Context) {
	p := paginationFromQuery(c)
	filter := entities.DisputeListFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}

	disputes, total, err := h.disputeUsecase.List(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if disputes == nil {
		disputes = []*entities.Dispute{}
	}
	response.Paginated(c, http.StatusOK, disputes, utils.CalculateMeta(total, p.Page, p.Limit))
}

// Get returns a single dispute
// GET /api/v1/admin/disputes/:id
func (h *DisputeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dispute ID"})
		return
	}

	dispute, err := h.disputeUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dispute)
}

// Stats returns per-status dispute counts
// GET /api/v1/admin/disputes/stats
func (h *DisputeHandler) Stats(c *gin.Context) {
	stats, err := h.disputeUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// UpdateStatus changes the adjudication state
// PATCH /api/v1/admin/disputes/:id/status
func (h *DisputeHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dispute ID"})
		return
	}

	var input entities.UpdateDisputeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.disputeUsecase.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dispute)
}

// Assign hands the dispute to an admin
// POST /api/v1/admin/disputes/:id/assign
func (h *DisputeHandler) Assign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dispute ID"})
		return
	}

	var input entities.AssignDisputeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispute, err := h.disputeUsecase.Assign(c.Request.Context(), id, input.AdminID, input.AdminName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dispute)
}

// Delete removes a dispute
// DELETE /api/v1/admin/disputes/:id
func (h *DisputeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dispute ID"})
		return
	}

	if err := h.disputeUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Dispute deleted"})
}
