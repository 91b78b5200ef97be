package repository

import (
	"context"

	"finbuddy/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type GoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the goal and returns the store-assigned id. Current
// progress starts at the column default of 0.
func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) (int64, error) {
	query := squirrel.Insert("goals").
		Columns("name", "target", "deadline", "priority").
		Values(goal.Name, goal.Target, goal.Deadline, goal.Priority).
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

// List returns all goals, soonest deadline first.
func (r *GoalRepository) List(ctx context.Context) ([]*models.Goal, error) {
	query := squirrel.Select("id", "name", "target", "current", "deadline", "priority", "created_at").
		From("goals").
		OrderBy("deadline ASC").
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

	var goals []*models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(
			&g.ID, &g.Name, &g.Target, &g.Current, &g.Deadline, &g.Priority, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, &g)
	}

	return goals, rows.Err()
}

// Update overwrites every mutable field of the goal.
func (r *GoalRepository) Update(ctx context.Context, id int64, goal *models.Goal) error {
	query := squirrel.Update("goals").
		Set("name", goal.Name).
		Set("target", goal.Target).
		Set("current", goal.Current).
		Set("deadline", goal.Deadline).
		Set("priority", goal.Priority).
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
	r.logger.Debug("Goal updated", zap.Int64("id", id), zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// Delete removes the goal. Deleting a missing id succeeds.
func (r *GoalRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("goals").
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
	r.logger.Debug("Goal deleted", zap.Int64("id", id), zap.Int64("rows", tag.RowsAffected()))
	return nil
}
