package repositories

import (
	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
)

// PendingRegistrationRepository handles database operations for the
// registration approval queue
type PendingRegistrationRepository struct{}

// NewPendingRegistrationRepository creates a new pending registration repository instance
func NewPendingRegistrationRepository() *PendingRegistrationRepository {
	return &PendingRegistrationRepository{}
}

// Create inserts a new pending registration
func (r *PendingRegistrationRepository) Create(pending models.PendingRegistration) (models.PendingRegistration, error) {
	result := database.DB.Create(&pending)
	return pending, result.Error
}

// FindByToken retrieves a pending registration by its approval token
func (r *PendingRegistrationRepository) FindByToken(token string) (models.PendingRegistration, error) {
	var pending models.PendingRegistration
	result := database.DB.Where("approval_token = ?", token).First(&pending)
	return pending, result.Error
}

// ExistsByUsername checks whether a registration for the username is already queued
func (r *PendingRegistrationRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.PendingRegistration{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// Delete removes a pending registration from the queue
func (r *PendingRegistrationRepository) Delete(id string) error {
	return database.DB.Delete(&models.PendingRegistration{}, "id = ?", id).Error
}

// FindAll retrieves all pending registrations, newest first
func (r *PendingRegistrationRepository) FindAll() ([]models.PendingRegistration, error) {
	var pending []models.PendingRegistration
	result := database.DB.Order("created_at desc").Find(&pending)
	return pending, result.Error
}
