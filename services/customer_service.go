package services

import (
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
)

// CustomerService handles business logic for customers
type CustomerService struct {
	customerRepo *repositories.CustomerRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService() *CustomerService {
	return &CustomerService{
		customerRepo: repositories.NewCustomerRepository(),
	}
}

// ListCustomers retrieves all customers owned by the user
func (s *CustomerService) ListCustomers(userID string) ([]models.Customer, error) {
	return s.customerRepo.FindByUserID(userID)
}

// GetCustomer retrieves a customer with its projects
func (s *CustomerService) GetCustomer(customerID string, userID string) (models.Customer, error) {
	customer, err := s.customerRepo.WithProjects(customerID)
	if err != nil {
		return models.Customer{}, mapNotFound(err)
	}
	if customer.UserID != userID {
		return models.Customer{}, ErrOwnershipViolation
	}
	return customer, nil
}

// CreateCustomer creates a new customer owned by the user
func (s *CustomerService) CreateCustomer(name string, userID string) (models.Customer, error) {
	customer := models.Customer{
		Name:   name,
		UserID: userID,
	}
	return s.customerRepo.Create(customer)
}

// UpdateCustomer renames an existing customer
func (s *CustomerService) UpdateCustomer(customerID string, name string, userID string) (models.Customer, error) {
	customer, err := s.customerRepo.FindByID(customerID)
	if err != nil {
		return models.Customer{}, mapNotFound(err)
	}
	if customer.UserID != userID {
		return models.Customer{}, ErrOwnershipViolation
	}

	customer.Name = name
	if err := s.customerRepo.Update(customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer and cascades to all descendant
// projects, timers and sessions
func (s *CustomerService) DeleteCustomer(customerID string, userID string) error {
	customer, err := s.customerRepo.FindByID(customerID)
	if err != nil {
		return mapNotFound(err)
	}
	if customer.UserID != userID {
		return ErrOwnershipViolation
	}
	return s.customerRepo.Delete(customerID)
}
