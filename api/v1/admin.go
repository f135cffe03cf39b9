package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/repositories"
)

var userRepository = repositories.NewUserRepository()

// ListUsers retrieves all users (admin only)
func ListUsers(c *gin.Context) {
	users, err := userRepository.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   users,
	})
}
