package dto

import (
	"errors"
	"time"
)

// dateFormat is the fixed-width form every stored date must follow.
// Analytics cutoffs compare dates as strings, so zero padding matters.
const dateFormat = "2006-01-02"

var errBadDate = errors.New("date must be in YYYY-MM-DD format")

type ExpenseRequest struct {
	Amount        *float64 `json:"amount"`
	Category      string   `json:"category"`
	Date          string   `json:"date"`
	PaymentMethod string   `json:"paymentMethod"`
	Description   string   `json:"description"`
}

// Validate checks required fields and the date format. It returns a
// field-level message suitable for a 400 response body.
func (r *ExpenseRequest) Validate() error {
	if r.Amount == nil {
		return errors.New("amount is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	if r.Date == "" {
		return errors.New("date is required")
	}
	if r.PaymentMethod == "" {
		return errors.New("paymentMethod is required")
	}
	if _, err := time.Parse(dateFormat, r.Date); err != nil {
		return errBadDate
	}
	return nil
}

type ExpenseResponse struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	Description   string  `json:"description"`
	CreatedAt     string  `json:"created_at"`
}
