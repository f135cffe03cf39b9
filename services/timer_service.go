package services

import (
	"github.com/shopspring/decimal"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
)

// TimerService handles business logic for timers
type TimerService struct {
	timerRepo   *repositories.TimerRepository
	projectRepo *repositories.ProjectRepository
}

// NewTimerService creates a new timer service instance
func NewTimerService() *TimerService {
	return &TimerService{
		timerRepo:   repositories.NewTimerRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// parseRate parses and validates an hourly rate submitted as a decimal string
func parseRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidRate
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, ErrInvalidRate
	}
	return rate, nil
}

// ListTimers retrieves all timers under one of the user's projects
func (s *TimerService) ListTimers(projectID string, userID string) ([]models.Timer, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return nil, ErrOwnershipViolation
	}
	return s.timerRepo.FindByProjectID(projectID)
}

// GetTimer retrieves a timer with its sessions
func (s *TimerService) GetTimer(timerID string, userID string) (models.Timer, error) {
	timer, err := s.timerRepo.WithSessions(timerID)
	if err != nil {
		return models.Timer{}, mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return models.Timer{}, ErrOwnershipViolation
	}
	return timer, nil
}

// CreateTimer creates a new timer under a project
func (s *TimerService) CreateTimer(projectID string, taskName string, hourlyRate string, userID string) (models.Timer, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Timer{}, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return models.Timer{}, ErrOwnershipViolation
	}

	rate, err := parseRate(hourlyRate)
	if err != nil {
		return models.Timer{}, err
	}

	timer := models.Timer{
		TaskName:   taskName,
		ProjectID:  projectID,
		HourlyRate: rate,
	}
	return s.timerRepo.Create(timer)
}

// UpdateTimer modifies a timer's task name and hourly rate
func (s *TimerService) UpdateTimer(timerID string, taskName string, hourlyRate string, userID string) (models.Timer, error) {
	timer, err := s.timerRepo.FindByID(timerID)
	if err != nil {
		return models.Timer{}, mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return models.Timer{}, ErrOwnershipViolation
	}

	rate, err := parseRate(hourlyRate)
	if err != nil {
		return models.Timer{}, err
	}

	timer.TaskName = taskName
	timer.HourlyRate = rate
	if err := s.timerRepo.Update(timer); err != nil {
		return models.Timer{}, err
	}
	return timer, nil
}

// TimerRunning reports whether one of the user's timers has an open session
func (s *TimerService) TimerRunning(timerID string, userID string) (bool, error) {
	timer, err := s.timerRepo.FindByID(timerID)
	if err != nil {
		return false, mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return false, ErrOwnershipViolation
	}
	return s.timerRepo.HasOpenSession(timerID)
}

// DeleteTimer deletes a timer and cascades to its sessions
func (s *TimerService) DeleteTimer(timerID string, userID string) error {
	timer, err := s.timerRepo.FindByID(timerID)
	if err != nil {
		return mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return ErrOwnershipViolation
	}
	return s.timerRepo.Delete(timerID)
}
