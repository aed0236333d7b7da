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

// CatalogHandler exposes the admin list/inspect/update surface over
// packages, trips, bookings, transactions and wallets.
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

func catalogFilter(c *gin.Context) entities.CatalogListFilter {
	return entities.CatalogListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

// ListPackages lists package requests with their delivery status
// GET /api/v1/admin/packages
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	p := paginationFromQuery(c)
	items, total, err := h.catalogUsecase.ListPackages(c.Request.Context(), catalogFilter(c), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.PackageRequest{}
	}
	response.Paginated(c, http.StatusOK, items, utils.CalculateMeta(total, p.Page, p.Limit))
}

// GetPackage returns one package request
// GET /api/v1/admin/packages/:id
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pkg, err := h.catalogUsecase.GetPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, pkg)
}

// UpdatePackageStatus changes a package's lifecycle status
// PATCH /api/v1/admin/packages/:id/status
func (h *CatalogHandler) UpdatePackageStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pkg, err := h.catalogUsecase.UpdatePackageStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, pkg)
}

// DeletePackage removes a package request
// DELETE /api/v1/admin/packages/:id
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogUsecase.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Package deleted"})
}

// ListTrips lists travel trips
// GET /api/v1/admin/trips
func (h *CatalogHandler) ListTrips(c *gin.Context) {
	p := paginationFromQuery(c)
	items, total, err := h.catalogUsecase.ListTrips(c.Request.Context(), catalogFilter(c), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.TravelTrip{}
	}
	response.Paginated(c, http.StatusOK, items, utils.CalculateMeta(total, p.Page, p.Limit))
}

// GetTrip returns one trip
// GET /api/v1/admin/trips/:id
func (h *CatalogHandler) GetTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	trip, err := h.catalogUsecase.GetTrip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, trip)
}

// UpdateTripStatus changes a trip's lifecycle status
// PATCH /api/v1/admin/trips/:id/status
func (h *CatalogHandler) UpdateTripStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip, err := h.catalogUsecase.UpdateTripStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, trip)
}

// DeleteTrip removes a trip
// DELETE /api/v1/admin/trips/:id
func (h *CatalogHandler) DeleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogUsecase.DeleteTrip(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Trip deleted"})
}

// ListBookings lists bookings
// GET /api/v1/admin/bookings
func (h *CatalogHandler) ListBookings(c *gin.Context) {
	p := paginationFromQuery(c)
	items, total, err := h.catalogUsecase.ListBookings(c.Request.Context(), catalogFilter(c), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Booking{}
	}
	response.Paginated(c, http.StatusOK, items, utils.CalculateMeta(total, p.Page, p.Limit))
}

// GetBooking returns one booking
// GET /api/v1/admin/bookings/:id
func (h *CatalogHandler) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := h.catalogUsecase.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, booking)
}

// UpdateBookingStatus changes a booking's lifecycle status
// PATCH /api/v1/admin/bookings/:id/status
func (h *CatalogHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booking, err := h.catalogUsecase.UpdateBookingStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, booking)
}

// DeleteBooking removes a booking
// DELETE /api/v1/admin/bookings/:id
func (h *CatalogHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogUsecase.DeleteBooking(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking deleted"})
}

// ListTransactions lists transactions
// GET /api/v1/admin/transactions
func (h *CatalogHandler) ListTransactions(c *gin.Context) {
	p := paginationFromQuery(c)
	items, total, err := h.catalogUsecase.ListTransactions(c.Request.Context(), catalogFilter(c), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Transaction{}
	}
	response.Paginated(c, http.StatusOK, items, utils.CalculateMeta(total, p.Page, p.Limit))
}

// GetTransaction returns one transaction
// GET /api/v1/admin/transactions/:id
func (h *CatalogHandler) GetTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tx, err := h.catalogUsecase.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, tx)
}

// UpdateTransactionStatus changes a transaction's state
// PATCH /api/v1/admin/transactions/:id/status
func (h *CatalogHandler) UpdateTransactionStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx, err := h.catalogUsecase.UpdateTransactionStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, tx)
}

// DeleteTransaction removes a transaction
// DELETE /api/v1/admin/transactions/:id
func (h *CatalogHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogUsecase.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// ListWallets lists wallets
// GET /api/v1/admin/wallets
func (h *CatalogHandler) ListWallets(c *gin.Context) {
	p := paginationFromQuery(c)
	items, total, err := h.catalogUsecase.ListWallets(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Wallet{}
	}
	response.Paginated(c, http.StatusOK, items, utils.CalculateMeta(total, p.Page, p.Limit))
}

// GetWallet returns a user's wallet
// GET /api/v1/admin/wallets/:id
func (h *CatalogHandler) GetWallet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	wallet, err := h.catalogUsecase.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, wallet)
}
