package repositories

import (
	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for timer sessions
type SessionRepository struct{}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// FindByID retrieves a session with its full ownership chain preloaded
func (r *SessionRepository) FindByID(id string) (models.TimerSession, error) {
	var session models.TimerSession
	result := database.DB.Preload("Timer.Project.Customer").First(&session, "id = ?", id)
	return session, result.Error
}

// FindByTimerID retrieves all sessions of a timer, newest first
func (r *SessionRepository) FindByTimerID(timerID string) ([]models.TimerSession, error) {
	var sessions []models.TimerSession
	result := database.DB.Where("timer_id = ?", timerID).Order("start_time desc").Find(&sessions)
	return sessions, result.Error
}

// FindOpenByTimerID retrieves the open session of a timer within the given
// transaction, if one exists
func (r *SessionRepository) FindOpenByTimerID(tx *gorm.DB, timerID string) (models.TimerSession, error) {
	var session models.TimerSession
	result := tx.Where("timer_id = ? AND end_time IS NULL", timerID).First(&session)
	return session, result.Error
}

// FindRunningByUserID retrieves all open sessions across a user's customers,
// newest first
func (r *SessionRepository) FindRunningByUserID(userID string) ([]models.TimerSession, error) {
	var sessions []models.TimerSession
	result := database.DB.
		Joins("JOIN timers ON timers.id = timer_sessions.timer_id AND timers.deleted_at IS NULL").
		Joins("JOIN projects ON projects.id = timers.project_id AND projects.deleted_at IS NULL").
		Joins("JOIN customers ON customers.id = projects.customer_id AND customers.deleted_at IS NULL").
		Where("customers.user_id = ? AND timer_sessions.end_time IS NULL", userID).
		Preload("Timer.Project.Customer").
		Order("timer_sessions.start_time desc").
		Find(&sessions)
	return sessions, result.Error
}

// UpdateNote writes a session's note. Only the note column is touched:
// end_time belongs exclusively to the start/stop paths, and a full-row save
// from a stale read could reopen a session that was stopped in between.
func (r *SessionRepository) UpdateNote(id string, note string) error {
	return database.DB.Model(&models.TimerSession{}).
		Where("id = ?", id).
		Update("note", note).Error
}

// UpdateDeliverable tags or untags a session's deliverable. A nil id clears
// the link.
func (r *SessionRepository) UpdateDeliverable(id string, deliverableID *string) error {
	return database.DB.Model(&models.TimerSession{}).
		Where("id = ?", id).
		Update("deliverable_id", deliverableID).Error
}

// Delete removes a session
func (r *SessionRepository) Delete(id string) error {
	return database.DB.Delete(&models.TimerSession{}, "id = ?", id).Error
}
