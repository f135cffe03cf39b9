package dto

import "time"

// CreateProjectRequest represents the request payload for creating a project
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// UpdateProjectRequest represents the request payload for updating a project
type UpdateProjectRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// ProjectResponse represents the standard response format for a project
type ProjectResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
