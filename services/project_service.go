package services

import (
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	customerRepo *repositories.CustomerRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(),
		customerRepo: repositories.NewCustomerRepository(),
	}
}

// ListProjects retrieves all projects under one of the user's customers
func (s *ProjectService) ListProjects(customerID string, userID string) ([]models.Project, error) {
	customer, err := s.customerRepo.FindByID(customerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if customer.UserID != userID {
		return nil, ErrOwnershipViolation
	}
	return s.projectRepo.FindByCustomerID(customerID)
}

// GetProject retrieves a project with its timers
func (s *ProjectService) GetProject(projectID string, userID string) (models.Project, error) {
	project, err := s.projectRepo.WithTimers(projectID)
	if err != nil {
		return models.Project{}, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return models.Project{}, ErrOwnershipViolation
	}
	return project, nil
}

// CreateProject creates a new active project under a customer
func (s *ProjectService) CreateProject(customerID string, name string, userID string) (models.Project, error) {
	customer, err := s.customerRepo.FindByID(customerID)
	if err != nil {
		return models.Project{}, mapNotFound(err)
	}
	if customer.UserID != userID {
		return models.Project{}, ErrOwnershipViolation
	}

	project := models.Project{
		Name:       name,
		CustomerID: customerID,
		Status:     models.ProjectStatusActive,
	}
	return s.projectRepo.Create(project)
}

// UpdateProject renames an existing project
func (s *ProjectService) UpdateProject(projectID string, name string, userID string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return models.Project{}, ErrOwnershipViolation
	}

	project.Name = name
	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// CompleteProject marks a project as completed. Existing open sessions are
// left running; only new sessions are blocked from that point on.
func (s *ProjectService) CompleteProject(projectID string, userID string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return models.Project{}, ErrOwnershipViolation
	}

	project.Status = models.ProjectStatusCompleted
	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteProject deletes a project and cascades to its timers and sessions
func (s *ProjectService) DeleteProject(projectID string, userID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return ErrOwnershipViolation
	}
	return s.projectRepo.Delete(projectID)
}
