package api

import (
	"finbuddy/internal/api/handlers"
	"finbuddy/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.ServerConfig,
	expenseHandler *handlers.ExpenseHandler,
	goalHandler *handlers.GoalHandler,
	categoryHandler *handlers.CategoryHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	chatHandler *handlers.ChatHandler,
	systemHandler *handlers.SystemHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
				message = "Internal server error"
			}
			return c.Status(code).JSON(fiber.Map{
				"error":  message,
				"status": code,
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/", systemHandler.Home)
	app.Get("/api/health", systemHandler.Health)

	api := app.Group("/api")

	expenses := api.Group("/expenses")
	expenses.Get("", expenseHandler.List)
	expenses.Post("", expenseHandler.Create)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	goals := api.Group("/goals")
	goals.Get("", goalHandler.List)
	goals.Post("", goalHandler.Create)
	goals.Put("/:id", goalHandler.Update)
	goals.Delete("/:id", goalHandler.Delete)

	categories := api.Group("/categories")
	categories.Get("", categoryHandler.List)
	categories.Post("", categoryHandler.Create)

	api.Get("/analytics/summary", analyticsHandler.Summary)
	api.Get("/projections", analyticsHandler.Projections)
	api.Post("/chat", chatHandler.Chat)

	// Unknown routes get the generic 404 envelope.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Endpoint not found",
			"status": fiber.StatusNotFound,
		})
	})

	return app
}
