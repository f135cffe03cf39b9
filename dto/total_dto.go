package dto

// TotalResponse represents an aggregated duration/cost rollup for a timer,
// project or customer. Cost is rounded once, at this edge.
type TotalResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationSeconds int64  `json:"durationSeconds"`
	Duration        string `json:"duration"`
	Cost            string `json:"cost"`
}
