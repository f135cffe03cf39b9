package repositories

import (
	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct{}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// FindByUserID retrieves all customers belonging to a user
func (r *CustomerRepository) FindByUserID(userID string) ([]models.Customer, error) {
	var customers []models.Customer
	result := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&customers)
	return customers, result.Error
}

// FindByID retrieves a customer by its ID
func (r *CustomerRepository) FindByID(id string) (models.Customer, error) {
	var customer models.Customer
	result := database.DB.First(&customer, "id = ?", id)
	return customer, result.Error
}

// WithProjects loads a customer with its projects
func (r *CustomerRepository) WithProjects(id string) (models.Customer, error) {
	var customer models.Customer
	result := database.DB.Preload("Projects").First(&customer, "id = ?", id)
	return customer, result.Error
}

// WithTree loads a customer with its full project/timer/session tree,
// used by the read-time aggregation
func (r *CustomerRepository) WithTree(id string) (models.Customer, error) {
	var customer models.Customer
	result := database.DB.Preload("Projects.Timers.Sessions").First(&customer, "id = ?", id)
	return customer, result.Error
}

// TreeByUserID loads all of a user's customers with their full
// project/timer/session trees, used by the statistics overview
func (r *CustomerRepository) TreeByUserID(userID string) ([]models.Customer, error) {
	var customers []models.Customer
	result := database.DB.Preload("Projects.Timers.Sessions").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&customers)
	return customers, result.Error
}

// Create inserts a new customer into the database
func (r *CustomerRepository) Create(customer models.Customer) (models.Customer, error) {
	result := database.DB.Create(&customer)
	return customer, result.Error
}

// Update modifies an existing customer
func (r *CustomerRepository) Update(customer models.Customer) error {
	result := database.DB.Save(&customer)
	return result.Error
}

// Delete removes a customer and cascades to its projects, timers and
// sessions in a single transaction
func (r *CustomerRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var projectIDs []string
		if err := tx.Model(&models.Project{}).Where("customer_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			var timerIDs []string
			if err := tx.Model(&models.Timer{}).Where("project_id IN ?", projectIDs).Pluck("id", &timerIDs).Error; err != nil {
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

			if err := tx.Where("customer_id = ?", id).Delete(&models.Project{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Customer{}, "id = ?", id).Error
	})
}
