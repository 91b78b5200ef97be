package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrDuplicateCategory is returned when a category name already exists.
// The insert fails without mutating state.
var ErrDuplicateCategory = errors.New("category already exists")

// uniqueViolation is the Postgres error code for unique constraint breaks.
const uniqueViolation = "23505"

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a category name, mapping the unique-constraint violation
// to ErrDuplicateCategory.
func (r *CategoryRepository) Create(ctx context.Context, name string) error {
	query := squirrel.Insert("categories").
		Columns("name").
		Values(name).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

// ListNames returns all category names.
func (r *CategoryRepository) ListNames(ctx context.Context) ([]string, error) {
	query := squirrel.Select("name").From("categories")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
