package repositories

import (
	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByCustomerID retrieves all projects under a customer
func (r *ProjectRepository) FindByCustomerID(customerID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("customer_id = ?", customerID).Order("created_at desc").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID with its owning customer, so the
// caller can walk the ownership chain
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Customer").First(&project, "id = ?", id)
	return project, result.Error
}

// WithTimers loads a project with its timers
func (r *ProjectRepository) WithTimers(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Customer").Preload("Timers").First(&project, "id = ?", id)
	return project, result.Error
}

// WithTree loads a project with its full timer/session tree, used by the
// read-time aggregation
func (r *ProjectRepository) WithTree(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Customer").Preload("Timers.Sessions").First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project and cascades to its timers and sessions in a
// single transaction
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var timerIDs []string
		if err := tx.Model(&models.Timer{}).Where("project_id = ?", id).Pluck("id", &timerIDs).Error; err != nil {
			return err
		}

		if len(timerIDs) > 0 {
			if err := tx.Where("timer_id IN ?", timerIDs).Delete(&models.TimerSession{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", timerIDs).Delete(&models.Timer{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
