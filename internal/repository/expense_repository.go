package repository

import (
	"context"

	"finbuddy/internal/dto"
	"finbuddy/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var expenseColumns = []string{"id", "amount", "category", "date", "payment_method", "description", "created_at"}

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the expense and returns the store-assigned id.
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) (int64, error) {
	query := squirrel.Insert("expenses").
		Columns("amount", "category", "date", "payment_method", "description").
		Values(expense.Amount, expense.Category, expense.Date, expense.PaymentMethod, expense.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns all expenses, newest date first.
func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryExpenses(ctx, query)
}

// ListSince returns expenses with date >= cutoff. Cutoff is a YYYY-MM-DD
// string compared lexicographically, inclusive.
func (r *ExpenseRepository) ListSince(ctx context.Context, cutoff string) ([]*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.GtOrEq{"date": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryExpenses(ctx, query)
}

func (r *ExpenseRepository) queryExpenses(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Expense, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(
			&e.ID, &e.Amount, &e.Category, &e.Date, &e.PaymentMethod, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}

// Update overwrites every mutable field of the expense. Updating a
// missing id is not an error.
func (r *ExpenseRepository) Update(ctx context.Context, id int64, expense *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("amount", expense.Amount).
		Set("category", expense.Category).
		Set("date", expense.Date).
		Set("payment_method", expense.PaymentMethod).
		Set("description", expense.Description).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	r.logger.Debug("Expense updated", zap.Int64("id", id), zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// Delete removes the expense. Deleting a missing id succeeds.
func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	r.logger.Debug("Expense deleted", zap.Int64("id", id), zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// TotalSince sums expense amounts with date >= cutoff, 0 when none.
func (r *ExpenseRepository) TotalSince(ctx context.Context, cutoff string) (float64, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("expenses").
		Where(squirrel.GtOrEq{"date": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// TotalsByCategorySince groups the window total by category.
func (r *ExpenseRepository) TotalsByCategorySince(ctx context.Context, cutoff string) ([]dto.CategoryTotal, error) {
	query := squirrel.Select("category", "SUM(amount) AS total").
		From("expenses").
		Where(squirrel.GtOrEq{"date": cutoff}).
		GroupBy("category").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []dto.CategoryTotal{}
	for rows.Next() {
		var t dto.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// TotalsByPaymentSince groups the window total by payment method.
func (r *ExpenseRepository) TotalsByPaymentSince(ctx context.Context, cutoff string) ([]dto.PaymentTotal, error) {
	query := squirrel.Select("payment_method", "SUM(amount) AS total").
		From("expenses").
		Where(squirrel.GtOrEq{"date": cutoff}).
		GroupBy("payment_method").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []dto.PaymentTotal{}
	for rows.Next() {
		var t dto.PaymentTotal
		if err := rows.Scan(&t.PaymentMethod, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}
