package dto

import "time"

// CreateDeliverableRequest represents the request payload for creating a
// deliverable
type CreateDeliverableRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

// UpdateDeliverableRequest represents the request payload for updating a
// deliverable
type UpdateDeliverableRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

// AssignDeliverableRequest tags a session with a deliverable. A null
// deliverableId clears the tag.
type AssignDeliverableRequest struct {
	DeliverableID *string `json:"deliverableId"`
}

// DeliverableResponse represents the standard response format for a
// deliverable
type DeliverableResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ProjectID   string    `json:"projectId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
