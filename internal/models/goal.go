package models

import "time"

type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

// Goal is a savings goal with a deadline. Priority is an open label set;
// the constants above cover the values the frontend offers.
type Goal struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Target    float64   `db:"target"`
	Current   float64   `db:"current"`
	Deadline  string    `db:"deadline"`
	Priority  string    `db:"priority"`
	CreatedAt time.Time `db:"created_at"`
}
