package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
)

// BindJSON binds and validates a JSON request body. On failure it writes the
// standard validation error response and returns false; the caller must stop.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.HandleValidationError(err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
