package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Paginated wraps a list payload with its pagination metadata
func Paginated(c *gin.Context, status int, items interface{}, meta interface{}) {
	c.JSON(status, gin.H{
		"data":       items,
		"pagination": meta,
	})
}

// Error sends an error response. Repository sentinels map to their usual
// HTTP status; anything else is reported as an internal error without
// leaking the underlying message.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			appErr = domainerrors.NotFound("resource not found")
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			appErr = domainerrors.Conflict("resource already exists")
		case errors.Is(err, domainerrors.ErrInvalidInput):
			appErr = domainerrors.BadRequest("invalid input")
		case errors.Is(err, domainerrors.ErrUnauthorized):
			appErr = domainerrors.Unauthorized("unauthorized")
		case errors.Is(err, domainerrors.ErrForbidden):
			appErr = domainerrors.Forbidden("forbidden")
		default:
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithStatus sends an error response with an explicit status and code
func ErrorWithStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
