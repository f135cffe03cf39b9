package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/lib/telegram"
	"github.com/timekeep-simple/services"
)

// RegistrationController handles the registration approval workflow
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new registration controller
func NewRegistrationController(notifier telegram.Notifier) *RegistrationController {
	return &RegistrationController{
		registrationService: services.NewRegistrationService(notifier),
	}
}

// Register queues a sign-up for approval. No account exists until an admin
// approves the request.
func (rc *RegistrationController) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	pending, err := rc.registrationService.Submit(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Registration failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Registration submitted and awaiting approval",
		"data": dto.PendingRegistrationResponse{
			ID:        pending.ID,
			Username:  pending.Username,
			Email:     pending.Email,
			CreatedAt: pending.CreatedAt,
		},
	})
}

// Approve creates the account for a pending registration
func (rc *RegistrationController) Approve(c *gin.Context) {
	user, err := rc.registrationService.Approve(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Registration approved, user can now log in",
		"user":    user,
	})
}

// Deny discards a pending registration
func (rc *RegistrationController) Deny(c *gin.Context) {
	if err := rc.registrationService.Deny(c.Param("token")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Registration denied",
	})
}

// Resend re-sends the Telegram approval request
func (rc *RegistrationController) Resend(c *gin.Context) {
	if err := rc.registrationService.Resend(c.Param("token")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Approval notification resent",
	})
}

// ListPending retrieves the approval queue (admin only)
func (rc *RegistrationController) ListPending(c *gin.Context) {
	pending, err := rc.registrationService.ListPending()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   pending,
	})
}
