package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/services"
)

var statsService = services.NewStatsService()

// GetStats returns the statistics overview across the user's customers,
// projects and timers
func GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := statsService.Overview(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}
