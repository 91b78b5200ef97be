package models

import "time"

// Expense is a single tracked spending entry. Category and payment method
// are free-text labels; category is deliberately not tied to the
// categories table.
type Expense struct {
	ID            int64     `db:"id"`
	Amount        float64   `db:"amount"`
	Category      string    `db:"category"`
	Date          string    `db:"date"`
	PaymentMethod string    `db:"payment_method"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}
