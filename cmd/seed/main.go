// Command seed populates a development database with starter categories,
// a few months of sample expenses and a couple of savings goals, so the
// analytics and projection endpoints have something to chew on.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"finbuddy/internal/models"
	"finbuddy/internal/repository"
	"finbuddy/pkg/config"
	"finbuddy/pkg/logger"
	"finbuddy/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to initialize database schema", zap.Error(err))
	}

	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if err := seedCategories(ctx, categoryRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}
	if err := seedExpenses(ctx, expenseRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed expenses", zap.Error(err))
	}
	if err := seedGoals(ctx, goalRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed goals", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedCategories(ctx context.Context, repo *repository.CategoryRepository, logger *zap.Logger) error {
	names := []string{"Food", "Transport", "Rent", "Entertainment", "Healthcare", "Shopping"}

	for _, name := range names {
		err := repo.Create(ctx, name)
		if errors.Is(err, repository.ErrDuplicateCategory) {
			// Re-running the seed is fine; existing names are kept.
			logger.Debug("Category already present", zap.String("name", name))
			continue
		}
		if err != nil {
			return err
		}
	}

	logger.Info("Categories seeded", zap.Int("count", len(names)))
	return nil
}

func seedExpenses(ctx context.Context, repo *repository.ExpenseRepository, logger *zap.Logger) error {
	now := time.Now()
	samples := []struct {
		daysAgo       int
		amount        float64
		category      string
		paymentMethod string
		description   string
	}{
		{2, 450.00, "Food", "upi", "Groceries"},
		{5, 120.00, "Transport", "cash", "Metro card top-up"},
		{9, 1500.00, "Entertainment", "card", "Concert tickets"},
		{14, 450.00, "Food", "upi", "Groceries"},
		{21, 12000.00, "Rent", "bank_transfer", "Monthly rent"},
		{30, 800.00, "Healthcare", "card", "Pharmacy"},
		{38, 450.00, "Food", "upi", "Groceries"},
		{45, 2300.00, "Shopping", "card", "Winter jacket"},
		{52, 12000.00, "Rent", "bank_transfer", "Monthly rent"},
		{66, 350.00, "Transport", "upi", "Cab rides"},
		{74, 600.00, "Food", "cash", "Dinner out"},
		{83, 12000.00, "Rent", "bank_transfer", "Monthly rent"},
	}

	for _, s := range samples {
		_, err := repo.Create(ctx, &models.Expense{
			Amount:        s.amount,
			Category:      s.category,
			Date:          now.AddDate(0, 0, -s.daysAgo).Format("2006-01-02"),
			PaymentMethod: s.paymentMethod,
			Description:   s.description,
		})
		if err != nil {
			return err
		}
	}

	logger.Info("Expenses seeded", zap.Int("count", len(samples)))
	return nil
}

func seedGoals(ctx context.Context, repo *repository.GoalRepository, logger *zap.Logger) error {
	now := time.Now()
	samples := []*models.Goal{
		{
			Name:     "Emergency fund",
			Target:   100000,
			Deadline: now.AddDate(1, 0, 0).Format("2006-01-02"),
			Priority: string(models.PriorityHigh),
		},
		{
			Name:     "Goa trip",
			Target:   30000,
			Deadline: now.AddDate(0, 6, 0).Format("2006-01-02"),
			Priority: string(models.PriorityMedium),
		},
		{
			Name:     "New headphones",
			Target:   8000,
			Deadline: now.AddDate(0, 3, 0).Format("2006-01-02"),
			Priority: string(models.PriorityLow),
		},
	}

	for _, g := range samples {
		if _, err := repo.Create(ctx, g); err != nil {
			return err
		}
	}

	logger.Info("Goals seeded", zap.Int("count", len(samples)))
	return nil
}
