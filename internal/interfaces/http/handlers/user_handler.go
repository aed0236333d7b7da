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

// UserHandler handles admin user-management endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// List returns users matching the search/role filters
// GET /api/v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	p := paginationFromQuery(c)
	filter := entities.UserListFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
	}
	if blocked := c.Query("blocked"); blocked != "" {
		b := blocked == "true"
		filter.Blocked = &b
	}

	users, total, err := h.userUsecase.List(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	if users == nil {
		users = []*entities.User{}
	}

	response.Paginated(c, http.StatusOK, users, utils.CalculateMeta(total, p.Page, p.Limit))
}

// Get returns a single user
// GET /api/v1/admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Create creates a user by admin action
// POST /api/v1/admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// Update applies a partial admin edit
// PATCH /api/v1/admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Block blocks a user
// POST /api/v1/admin/users/:id/block
func (h *UserHandler) Block(c *gin.Context) {
	h.setBlocked(c, true)
}

// Unblock unblocks a user
// POST /api/v1/admin/users/:id/unblock
func (h *UserHandler) Unblock(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *UserHandler) setBlocked(c *gin.Context, blocked bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userUsecase.SetBlocked(c.Request.Context(), id, blocked); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocked": blocked})
}

// Delete removes a user
// DELETE /api/v1/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}
