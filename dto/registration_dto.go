package dto

import "time"

// PendingRegistrationResponse represents a queued registration in the admin
// view. The approval token is intentionally omitted.
type PendingRegistrationResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
