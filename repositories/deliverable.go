package repositories

import (
	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
	"gorm.io/gorm"
)

// DeliverableRepository handles database operations for deliverables
type DeliverableRepository struct{}

// NewDeliverableRepository creates a new deliverable repository instance
func NewDeliverableRepository() *DeliverableRepository {
	return &DeliverableRepository{}
}

// FindByProjectID retrieves all deliverables under a project, newest first
func (r *DeliverableRepository) FindByProjectID(projectID string) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&deliverables)
	return deliverables, result.Error
}

// FindByID retrieves a deliverable with its owning project and customer, so
// the caller can walk the ownership chain
func (r *DeliverableRepository) FindByID(id string) (models.Deliverable, error) {
	var deliverable models.Deliverable
	result := database.DB.Preload("Project.Customer").First(&deliverable, "id = ?", id)
	return deliverable, result.Error
}

// WithClosedSessions loads a deliverable with its closed sessions and their
// timers, used by the per-deliverable rollup. Open sessions are excluded
// until they are stopped.
func (r *DeliverableRepository) WithClosedSessions(id string) (models.Deliverable, error) {
	var deliverable models.Deliverable
	result := database.DB.Preload("Project.Customer").
		Preload("Sessions", "end_time IS NOT NULL").
		Preload("Sessions.Timer").
		First(&deliverable, "id = ?", id)
	return deliverable, result.Error
}

// Create inserts a new deliverable into the database
func (r *DeliverableRepository) Create(deliverable models.Deliverable) (models.Deliverable, error) {
	result := database.DB.Create(&deliverable)
	return deliverable, result.Error
}

// Update modifies an existing deliverable
func (r *DeliverableRepository) Update(deliverable models.Deliverable) error {
	result := database.DB.Save(&deliverable)
	return result.Error
}

// Delete removes a deliverable, untagging its sessions in the same
// transaction so the sessions themselves survive
func (r *DeliverableRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TimerSession{}).
			Where("deliverable_id = ?", id).
			Update("deliverable_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Deliverable{}, "id = ?", id).Error
	})
}
