package postgres

import (
	"context"
	"fmt"

	"finbuddy/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func NewPool(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established",
		zap.String("database", poolConfig.ConnConfig.Database),
	)

	return pool, nil
}

// Migrate creates the expense, goal and category tables if they do not
// exist yet. Statements are idempotent so it runs on every startup.
//
// Dates are stored as TEXT in fixed-width YYYY-MM-DD form; the analytics
// and projection queries compare them lexicographically, which is only
// correct while the write path keeps the format zero-padded.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			amount REAL NOT NULL,
			category TEXT NOT NULL,
			date TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			target REAL NOT NULL,
			current REAL DEFAULT 0,
			deadline TEXT NOT NULL,
			priority TEXT DEFAULT 'medium',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run schema statement: %w", err)
		}
	}

	logger.Info("Database schema initialized")
	return nil
}
