package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finbuddy/internal/api"
	"finbuddy/internal/api/handlers"
	"finbuddy/internal/repository"
	"finbuddy/internal/service"
	"finbuddy/pkg/config"
	"finbuddy/pkg/logger"
	"finbuddy/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting AI Finance Companion service",
		zap.String("environment", cfg.Server.Environment),
	)

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to initialize database schema", zap.Error(err))
	}

	// Initialize repositories
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	// Initialize services
	groqClient := service.NewGroqClient(&cfg.Groq, appLogger)
	chatService := service.NewChatService(groqClient, appLogger)
	analyticsService := service.NewAnalyticsService(expenseRepo, appLogger)
	projectionService := service.NewProjectionService(expenseRepo, appLogger)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseRepo, appLogger)
	goalHandler := handlers.NewGoalHandler(goalRepo, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, appLogger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, projectionService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	systemHandler := handlers.NewSystemHandler()

	// Setup router
	app := api.SetupRouter(
		&cfg.Server,
		expenseHandler,
		goalHandler,
		categoryHandler,
		analyticsHandler,
		chatHandler,
		systemHandler,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
