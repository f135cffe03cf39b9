package dto

import "time"

// CreateCustomerRequest represents the request payload for creating a customer
type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// UpdateCustomerRequest represents the request payload for updating a customer
type UpdateCustomerRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// CustomerResponse represents the standard response format for a customer
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
