package dto

import (
	"errors"
	"time"
)

type GoalRequest struct {
	Name     string   `json:"name"`
	Target   *float64 `json:"target"`
	Current  *float64 `json:"current"`
	Deadline string   `json:"deadline"`
	Priority string   `json:"priority"`
}

// Validate checks required fields and the deadline format. Current and
// Priority are optional; WithDefaults fills them in.
func (r *GoalRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Target == nil {
		return errors.New("target is required")
	}
	if r.Deadline == "" {
		return errors.New("deadline is required")
	}
	if _, err := time.Parse(dateFormat, r.Deadline); err != nil {
		return errors.New("deadline must be in YYYY-MM-DD format")
	}
	return nil
}

// WithDefaults returns the request's current progress and priority,
// substituting 0 and "medium" where the caller left them out.
func (r *GoalRequest) WithDefaults() (current float64, priority string) {
	if r.Current != nil {
		current = *r.Current
	}
	priority = r.Priority
	if priority == "" {
		priority = "medium"
	}
	return current, priority
}

type GoalResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Current   float64 `json:"current"`
	Deadline  string  `json:"deadline"`
	Priority  string  `json:"priority"`
	CreatedAt string  `json:"created_at"`
}
