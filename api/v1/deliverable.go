package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/services"
)

// DeliverableController handles deliverable-related API endpoints
type DeliverableController struct {
	deliverableService *services.DeliverableService
}

// NewDeliverableController creates a new deliverable controller
func NewDeliverableController() *DeliverableController {
	return &DeliverableController{
		deliverableService: services.NewDeliverableService(),
	}
}

// RegisterRoutes registers deliverable routes
func (dc *DeliverableController) RegisterRoutes(router *gin.RouterGroup) {
	deliverables := router.Group("/deliverables")
	{
		deliverables.PUT("/:id", dc.UpdateDeliverable)
		deliverables.DELETE("/:id", dc.DeleteDeliverable)
		deliverables.GET("/:id/total", dc.GetDeliverableTotal)
	}

	projects := router.Group("/projects")
	{
		projects.GET("/:id/deliverables", dc.ListDeliverables)
		projects.POST("/:id/deliverables", dc.CreateDeliverable)
	}
}

func deliverableResponse(deliverable models.Deliverable) dto.DeliverableResponse {
	return dto.DeliverableResponse{
		ID:          deliverable.ID,
		Name:        deliverable.Name,
		ProjectID:   deliverable.ProjectID,
		Description: deliverable.Description,
		CreatedAt:   deliverable.CreatedAt,
		UpdatedAt:   deliverable.UpdatedAt,
	}
}

// ListDeliverables retrieves all deliverables under a project
func (dc *DeliverableController) ListDeliverables(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	deliverables, err := dc.deliverableService.ListDeliverables(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   deliverables,
	})
}

// CreateDeliverable creates a new deliverable under a project
func (dc *DeliverableController) CreateDeliverable(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateDeliverableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	deliverable, err := dc.deliverableService.CreateDeliverable(ctx.Param("id"), req.Name, req.Description, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   deliverableResponse(deliverable),
	})
}

// UpdateDeliverable renames a deliverable and updates its description
func (dc *DeliverableController) UpdateDeliverable(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDeliverableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	deliverable, err := dc.deliverableService.UpdateDeliverable(ctx.Param("id"), req.Name, req.Description, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   deliverableResponse(deliverable),
	})
}

// DeleteDeliverable removes a deliverable, untagging its sessions
func (dc *DeliverableController) DeleteDeliverable(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := dc.deliverableService.DeleteDeliverable(ctx.Param("id"), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Deliverable deleted successfully",
	})
}

// GetDeliverableTotal returns the deliverable's aggregated duration and cost
// over its closed sessions
func (dc *DeliverableController) GetDeliverableTotal(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	total, err := dc.deliverableService.DeliverableTotal(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   total,
	})
}
