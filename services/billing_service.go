package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/lib/billing"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
)

// BillingService derives durations and costs from persisted sessions. Every
// total is recomputed from the session rows at read time; nothing is cached
// or denormalized, so totals can never drift from the underlying data.
type BillingService struct {
	customerRepo *repositories.CustomerRepository
	projectRepo  *repositories.ProjectRepository
	timerRepo    *repositories.TimerRepository
}

// NewBillingService creates a new billing service instance
func NewBillingService() *BillingService {
	return &BillingService{
		customerRepo: repositories.NewCustomerRepository(),
		projectRepo:  repositories.NewProjectRepository(),
		timerRepo:    repositories.NewTimerRepository(),
	}
}

// SumTimer adds up a timer's sessions. Open sessions are valued live as of
// now. The returned amount is unrounded; rounding happens once, in the DTO.
func SumTimer(timer models.Timer, now time.Time) (time.Duration, decimal.Decimal) {
	var total time.Duration
	amount := decimal.Zero
	for _, session := range timer.Sessions {
		d := billing.SessionDuration(session.StartTime, session.EndTime, now)
		total += d
		amount = amount.Add(billing.SessionCost(timer.HourlyRate, d))
	}
	return total, amount
}

// SumProject adds up all timers of a project
func SumProject(project models.Project, now time.Time) (time.Duration, decimal.Decimal) {
	var total time.Duration
	amount := decimal.Zero
	for _, timer := range project.Timers {
		d, a := SumTimer(timer, now)
		total += d
		amount = amount.Add(a)
	}
	return total, amount
}

// SumCustomer adds up all projects of a customer
func SumCustomer(customer models.Customer, now time.Time) (time.Duration, decimal.Decimal) {
	var total time.Duration
	amount := decimal.Zero
	for _, project := range customer.Projects {
		d, a := SumProject(project, now)
		total += d
		amount = amount.Add(a)
	}
	return total, amount
}

func totalResponse(id, name string, d time.Duration, amount decimal.Decimal) dto.TotalResponse {
	return dto.TotalResponse{
		ID:              id,
		Name:            name,
		DurationSeconds: int64(d / time.Second),
		Duration:        billing.FormatDuration(d),
		Cost:            billing.RoundMoney(amount).StringFixed(2),
	}
}

// TimerTotal computes the duration/cost rollup for one of the user's timers
func (s *BillingService) TimerTotal(timerID string, userID string, now time.Time) (dto.TotalResponse, error) {
	timer, err := s.timerRepo.WithSessions(timerID)
	if err != nil {
		return dto.TotalResponse{}, mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return dto.TotalResponse{}, ErrOwnershipViolation
	}

	d, amount := SumTimer(timer, now)
	return totalResponse(timer.ID, timer.TaskName, d, amount), nil
}

// ProjectTotal computes the duration/cost rollup for one of the user's projects
func (s *BillingService) ProjectTotal(projectID string, userID string, now time.Time) (dto.TotalResponse, error) {
	project, err := s.projectRepo.WithTree(projectID)
	if err != nil {
		return dto.TotalResponse{}, mapNotFound(err)
	}
	if project.Customer.UserID != userID {
		return dto.TotalResponse{}, ErrOwnershipViolation
	}

	d, amount := SumProject(project, now)
	return totalResponse(project.ID, project.Name, d, amount), nil
}

// CustomerTotal computes the duration/cost rollup for one of the user's customers
func (s *BillingService) CustomerTotal(customerID string, userID string, now time.Time) (dto.TotalResponse, error) {
	customer, err := s.customerRepo.WithTree(customerID)
	if err != nil {
		return dto.TotalResponse{}, mapNotFound(err)
	}
	if customer.UserID != userID {
		return dto.TotalResponse{}, ErrOwnershipViolation
	}

	d, amount := SumCustomer(customer, now)
	return totalResponse(customer.ID, customer.Name, d, amount), nil
}

// SessionResponse maps a session to its response DTO with derived duration
// and cost
func SessionResponse(session models.TimerSession, rate decimal.Decimal, now time.Time) dto.SessionResponse {
	d := billing.SessionDuration(session.StartTime, session.EndTime, now)
	return dto.SessionResponse{
		ID:              session.ID,
		TimerID:         session.TimerID,
		DeliverableID:   session.DeliverableID,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		Note:            session.Note,
		Open:            session.IsOpen(),
		DurationSeconds: int64(d / time.Second),
		Duration:        billing.FormatDuration(d),
		Cost:            billing.RoundMoney(billing.SessionCost(rate, d)).StringFixed(2),
	}
}
