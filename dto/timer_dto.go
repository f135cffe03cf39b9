package dto

import "time"

// CreateTimerRequest represents the request payload for creating a timer.
// HourlyRate is a decimal string to keep monetary input exact.
type CreateTimerRequest struct {
	TaskName   string `json:"taskName" binding:"required,max=200"`
	HourlyRate string `json:"hourlyRate" binding:"required"`
}

// UpdateTimerRequest represents the request payload for updating a timer
type UpdateTimerRequest struct {
	TaskName   string `json:"taskName" binding:"required,max=200"`
	HourlyRate string `json:"hourlyRate" binding:"required"`
}

// TimerResponse represents the standard response format for a timer
type TimerResponse struct {
	ID         string    `json:"id"`
	TaskName   string    `json:"taskName"`
	ProjectID  string    `json:"projectId"`
	HourlyRate string    `json:"hourlyRate"`
	Running    bool      `json:"running"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
