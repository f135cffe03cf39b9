package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/lib/billing"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
)

// StatsService builds the statistics overview across a user's whole tree.
// Unlike the per-entity totals, only closed sessions are counted here:
// running work enters the statistics once it is stopped.
type StatsService struct {
	customerRepo *repositories.CustomerRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{
		customerRepo: repositories.NewCustomerRepository(),
	}
}

func statsRow(name string, d time.Duration, amount decimal.Decimal, sessions int) dto.StatsRow {
	return dto.StatsRow{
		Name:            name,
		DurationSeconds: int64(d / time.Second),
		Duration:        billing.FormatDuration(d),
		Cost:            billing.RoundMoney(amount).StringFixed(2),
		SessionCount:    sessions,
	}
}

// Overview walks every customer, project and timer of the user and rolls
// closed sessions up into per-entity rows, each sorted by accumulated time
func (s *StatsService) Overview(userID string) (dto.StatsResponse, error) {
	customers, err := s.customerRepo.TreeByUserID(userID)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	resp := dto.StatsResponse{
		TotalCustomers: len(customers),
		Timers:         []dto.StatsRow{},
		Projects:       []dto.ProjectStatsRow{},
		Customers:      []dto.CustomerStatsRow{},
	}
	totalAmount := decimal.Zero
	var totalDuration time.Duration

	for _, customer := range customers {
		var customerDuration time.Duration
		customerAmount := decimal.Zero
		customerSessions := 0

		for _, project := range customer.Projects {
			if project.Status == models.ProjectStatusCompleted {
				resp.CompletedProjects++
			} else {
				resp.ActiveProjects++
			}

			var projectDuration time.Duration
			projectAmount := decimal.Zero
			projectSessions := 0

			for _, timer := range project.Timers {
				resp.TotalTimers++

				var timerDuration time.Duration
				timerAmount := decimal.Zero
				timerSessions := 0

				for _, session := range timer.Sessions {
					if session.IsOpen() {
						continue
					}
					d := billing.SessionDuration(session.StartTime, session.EndTime, time.Time{})
					timerDuration += d
					timerAmount = timerAmount.Add(billing.SessionCost(timer.HourlyRate, d))
					timerSessions++
				}

				resp.Timers = append(resp.Timers, statsRow(timer.TaskName, timerDuration, timerAmount, timerSessions))
				projectDuration += timerDuration
				projectAmount = projectAmount.Add(timerAmount)
				projectSessions += timerSessions
			}

			resp.Projects = append(resp.Projects, dto.ProjectStatsRow{
				StatsRow:     statsRow(project.Name, projectDuration, projectAmount, projectSessions),
				CustomerName: customer.Name,
				Status:       string(project.Status),
			})
			customerDuration += projectDuration
			customerAmount = customerAmount.Add(projectAmount)
			customerSessions += projectSessions
		}

		resp.Customers = append(resp.Customers, dto.CustomerStatsRow{
			StatsRow:     statsRow(customer.Name, customerDuration, customerAmount, customerSessions),
			ProjectCount: len(customer.Projects),
		})
		totalDuration += customerDuration
		totalAmount = totalAmount.Add(customerAmount)
		resp.TotalSessions += customerSessions
	}

	sort.SliceStable(resp.Timers, func(i, j int) bool {
		return resp.Timers[i].DurationSeconds > resp.Timers[j].DurationSeconds
	})
	sort.SliceStable(resp.Projects, func(i, j int) bool {
		return resp.Projects[i].DurationSeconds > resp.Projects[j].DurationSeconds
	})
	sort.SliceStable(resp.Customers, func(i, j int) bool {
		return resp.Customers[i].DurationSeconds > resp.Customers[j].DurationSeconds
	})

	resp.TotalDurationSeconds = int64(totalDuration / time.Second)
	resp.TotalDuration = billing.FormatDuration(totalDuration)
	resp.TotalCost = billing.RoundMoney(totalAmount).StringFixed(2)
	return resp, nil
}
