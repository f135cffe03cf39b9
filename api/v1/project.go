package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/services"
)

var projectService = services.NewProjectService()

func projectResponse(project models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:         project.ID,
		Name:       project.Name,
		CustomerID: project.CustomerID,
		Status:     string(project.Status),
		CreatedAt:  project.CreatedAt,
		UpdatedAt:  project.UpdatedAt,
	}
}

// ListProjects retrieves all projects under a customer
func ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projects, err := projectService.ListProjects(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// GetProject retrieves a project with its timers
func GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := projectService.GetProject(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject creates a new project under a customer
func CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.CreateProject(c.Param("id"), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   projectResponse(project),
	})
}

// UpdateProject renames a project
func UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.UpdateProject(c.Param("id"), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projectResponse(project),
	})
}

// CompleteProject marks a project as completed
func CompleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := projectService.CompleteProject(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projectResponse(project),
	})
}

// DeleteProject deletes a project and its timers and sessions
func DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := projectService.DeleteProject(c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// GetProjectTotal returns the project's aggregated duration and cost
func GetProjectTotal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	total, err := billingService.ProjectTotal(c.Param("id"), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   total,
	})
}
