package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/lib/billing"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
)

// DeliverableService handles business logic for deliverables
type DeliverableService struct {
	deliverableRepo *repositories.DeliverableRepository
	projectRepo     *repositories.ProjectRepository
}

// NewDeliverableService creates a new deliverable service instance
func NewDeliverableService() *DeliverableService {
	return &DeliverableService{
		deliverableRepo: repositories.NewDeliverableRepository(),
		projectRepo:     repositories.NewProjectRepository(),
	}
}

// ListDeliverables retrieves all deliverables under one of the user's projects
func (s *DeliverableService) ListDeliverables(projectID string, userID string) ([]models.Deliverable, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return nil, ErrOwnershipViolation
	}
	return s.deliverableRepo.FindByProjectID(projectID)
}

// CreateDeliverable creates a new deliverable under a project. Names must be
// unique within the project.
func (s *DeliverableService) CreateDeliverable(projectID string, name string, description string, userID string) (models.Deliverable, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Deliverable{}, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return models.Deliverable{}, ErrOwnershipViolation
	}

	deliverable, err := s.deliverableRepo.Create(models.Deliverable{
		Name:        name,
		ProjectID:   projectID,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Deliverable{}, ErrDuplicateDeliverable
		}
		return models.Deliverable{}, err
	}
	return deliverable, nil
}

// UpdateDeliverable renames a deliverable and updates its description
func (s *DeliverableService) UpdateDeliverable(deliverableID string, name string, description string, userID string) (models.Deliverable, error) {
	deliverable, err := s.deliverableRepo.FindByID(deliverableID)
	if err != nil {
		return models.Deliverable{}, mapNotFound(err)
	}
	if deliverable.Project.Customer.UserID != userID {
		return models.Deliverable{}, ErrOwnershipViolation
	}

	deliverable.Name = name
	deliverable.Description = description
	if err := s.deliverableRepo.Update(deliverable); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Deliverable{}, ErrDuplicateDeliverable
		}
		return models.Deliverable{}, err
	}
	return deliverable, nil
}

// DeleteDeliverable removes a deliverable. Tagged sessions are untagged,
// not deleted.
func (s *DeliverableService) DeleteDeliverable(deliverableID string, userID string) error {
	deliverable, err := s.deliverableRepo.FindByID(deliverableID)
	if err != nil {
		return mapNotFound(err)
	}
	if deliverable.Project.Customer.UserID != userID {
		return ErrOwnershipViolation
	}
	return s.deliverableRepo.Delete(deliverableID)
}

// DeliverableTotal computes the duration/cost rollup over the deliverable's
// closed sessions. Each session is priced at its own timer's rate; amounts
// are summed unrounded and rounded once in the DTO.
func (s *DeliverableService) DeliverableTotal(deliverableID string, userID string) (dto.TotalResponse, error) {
	deliverable, err := s.deliverableRepo.WithClosedSessions(deliverableID)
	if err != nil {
		return dto.TotalResponse{}, mapNotFound(err)
	}
	if deliverable.Project.Customer.UserID != userID {
		return dto.TotalResponse{}, ErrOwnershipViolation
	}

	var total time.Duration
	amount := decimal.Zero
	for _, session := range deliverable.Sessions {
		d := billing.SessionDuration(session.StartTime, session.EndTime, time.Time{})
		total += d
		amount = amount.Add(billing.SessionCost(session.Timer.HourlyRate, d))
	}
	return totalResponse(deliverable.ID, deliverable.Name, total, amount), nil
}
