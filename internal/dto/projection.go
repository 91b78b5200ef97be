package dto

type ProjectionMonth struct {
	Month             string  `json:"month"`
	ProjectedExpenses float64 `json:"projected_expenses"`
}

// ProjectionResponse carries either a forecast (Projections non-empty,
// AvgMonthly set) or an insufficient-data message with an empty list.
type ProjectionResponse struct {
	Projections []ProjectionMonth `json:"projections"`
	AvgMonthly  *float64          `json:"avg_monthly,omitempty"`
	Message     string            `json:"message,omitempty"`
}
