package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health is the liveness probe.
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Finance API is running",
	})
}

// Home returns service metadata and the endpoint map.
func (h *SystemHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Finance Companion API",
		"version": "1.0",
		"endpoints": fiber.Map{
			"expenses":    "/api/expenses",
			"goals":       "/api/goals",
			"categories":  "/api/categories",
			"chat":        "/api/chat",
			"analytics":   "/api/analytics/summary",
			"projections": "/api/projections",
		},
	})
}
