package dto

// StatsRow represents one line of the statistics overview: a timer, project
// or customer with its accumulated time and billed cost over closed sessions.
type StatsRow struct {
	Name            string `json:"name"`
	DurationSeconds int64  `json:"durationSeconds"`
	Duration        string `json:"duration"`
	Cost            string `json:"cost"`
	SessionCount    int    `json:"sessionCount"`
}

// ProjectStatsRow is a stats row with the project's customer and status
type ProjectStatsRow struct {
	StatsRow
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
}

// CustomerStatsRow is a stats row with the customer's project count
type CustomerStatsRow struct {
	StatsRow
	ProjectCount int `json:"projectCount"`
}

// StatsResponse represents the statistics overview for a user. Only closed
// sessions count; running work shows up once it is stopped.
type StatsResponse struct {
	TotalSessions        int    `json:"totalSessions"`
	TotalDurationSeconds int64  `json:"totalDurationSeconds"`
	TotalDuration        string `json:"totalDuration"`
	TotalCost            string `json:"totalCost"`

	TotalCustomers    int `json:"totalCustomers"`
	TotalTimers       int `json:"totalTimers"`
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`

	Timers    []StatsRow         `json:"timers"`
	Projects  []ProjectStatsRow  `json:"projects"`
	Customers []CustomerStatsRow `json:"customers"`
}
