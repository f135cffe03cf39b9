package repositories

import (
	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
	"gorm.io/gorm"
)

// TimerRepository handles database operations for timers
type TimerRepository struct{}

// NewTimerRepository creates a new timer repository instance
func NewTimerRepository() *TimerRepository {
	return &TimerRepository{}
}

// FindByProjectID retrieves all timers under a project
func (r *TimerRepository) FindByProjectID(projectID string) ([]models.Timer, error) {
	var timers []models.Timer
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&timers)
	return timers, result.Error
}

// FindByID retrieves a timer by its ID with the project and customer
// preloaded, so the caller can walk the ownership chain
func (r *TimerRepository) FindByID(id string) (models.Timer, error) {
	var timer models.Timer
	result := database.DB.Preload("Project.Customer").First(&timer, "id = ?", id)
	return timer, result.Error
}

// WithSessions loads a timer with its sessions, newest first
func (r *TimerRepository) WithSessions(id string) (models.Timer, error) {
	var timer models.Timer
	result := database.DB.Preload("Project.Customer").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("timer_sessions.start_time desc")
		}).
		First(&timer, "id = ?", id)
	return timer, result.Error
}

// HasOpenSession reports whether the timer currently has an open session
func (r *TimerRepository) HasOpenSession(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.TimerSession{}).
		Where("timer_id = ? AND end_time IS NULL", id).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new timer into the database
func (r *TimerRepository) Create(timer models.Timer) (models.Timer, error) {
	result := database.DB.Create(&timer)
	return timer, result.Error
}

// Update modifies an existing timer
func (r *TimerRepository) Update(timer models.Timer) error {
	result := database.DB.Save(&timer)
	return result.Error
}

// Delete removes a timer and cascades to its sessions in a single transaction
func (r *TimerRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("timer_id = ?", id).Delete(&models.TimerSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Timer{}, "id = ?", id).Error
	})
}
