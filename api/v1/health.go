package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the service status
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "timekeep-simple",
		"version": "1.0.0",
	})
}
