package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/services"
)

// respondError maps service errors to HTTP statuses. Business rule
// violations are client errors; nothing here is fatal.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrOwnershipViolation):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrProjectCompleted),
		errors.Is(err, services.ErrSessionAlreadyRunning),
		errors.Is(err, services.ErrNoOpenSession),
		errors.Is(err, services.ErrDuplicateDeliverable):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidTimeRange),
		errors.Is(err, services.ErrInvalidRate),
		errors.Is(err, services.ErrInvalidDeliverable):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// currentUserID returns the authenticated user's ID set by AuthMiddleware
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return "", false
	}
	return userID.(string), true
}
