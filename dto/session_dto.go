package dto

import "time"

// UpdateSessionNoteRequest represents the request payload for editing a
// session note
type UpdateSessionNoteRequest struct {
	Note string `json:"note"`
}

// StopTimerRequest represents the request payload for stopping a timer
type StopTimerRequest struct {
	Note string `json:"note"`
}

// SessionResponse represents the standard response format for a session.
// Duration and cost are derived at read time; they are never stored.
type SessionResponse struct {
	ID              string     `json:"id"`
	TimerID         string     `json:"timerId"`
	DeliverableID   *string    `json:"deliverableId"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	Note            string     `json:"note"`
	Open            bool       `json:"open"`
	DurationSeconds int64      `json:"durationSeconds"`
	Duration        string     `json:"duration"`
	Cost            string     `json:"cost"`
}

// RunningSessionResponse represents an open session in the running timers
// overview, with enough context to identify where it lives
type RunningSessionResponse struct {
	SessionResponse
	TaskName     string `json:"taskName"`
	ProjectName  string `json:"projectName"`
	CustomerName string `json:"customerName"`
}
