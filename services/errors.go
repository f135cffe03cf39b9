package services

import (
	"errors"

	"gorm.io/gorm"
)

// Business errors surfaced to the API layer. All of them are terminal for
// the current request; none is fatal to the process.
var (
	// ErrNotFound indicates the referenced entity does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrOwnershipViolation indicates the caller does not own the target entity
	ErrOwnershipViolation = errors.New("you do not have permission to access this resource")

	// ErrProjectCompleted indicates a session cannot be opened on a completed project
	ErrProjectCompleted = errors.New("cannot start a timer on a completed project")

	// ErrSessionAlreadyRunning indicates the timer already has an open session
	ErrSessionAlreadyRunning = errors.New("timer is already running")

	// ErrNoOpenSession indicates the timer has no session to stop
	ErrNoOpenSession = errors.New("timer is not running")

	// ErrInvalidTimeRange indicates a stop time before the session start
	ErrInvalidTimeRange = errors.New("stop time cannot be before the session start time")

	// ErrInvalidRate indicates a malformed or negative hourly rate
	ErrInvalidRate = errors.New("hourly rate must be a non-negative decimal number")

	// ErrDuplicateDeliverable indicates the project already has a deliverable
	// with that name
	ErrDuplicateDeliverable = errors.New("a deliverable with this name already exists for this project")

	// ErrInvalidDeliverable indicates the deliverable belongs to a different
	// project than the session
	ErrInvalidDeliverable = errors.New("deliverable does not belong to the session's project")
)

// mapNotFound converts gorm's record-not-found into the service-level
// sentinel so handlers can match it with errors.Is
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
