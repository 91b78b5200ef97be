package handlers

import (
	"finbuddy/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analytics   *service.AnalyticsService
	projections *service.ProjectionService
	logger      *zap.Logger
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, projections *service.ProjectionService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics:   analytics,
		projections: projections,
		logger:      logger,
	}
}

// Summary godoc
// @Summary Aggregate spend over a trailing window
// @Produce json
// @Param period query string false "week, month or year" default(month)
// @Success 200 {object} dto.AnalyticsSummary
// @Router /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	period := c.Query("period", "month")

	summary, err := h.analytics.Summary(c.Context(), period)
	if err != nil {
		h.logger.Error("Failed to compute analytics summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute analytics summary",
		})
	}
	return c.JSON(summary)
}

// Projections godoc
// @Summary Linear spending forecast
// @Produce json
// @Param months query int false "Forecast horizon in months" default(3)
// @Success 200 {object} dto.ProjectionResponse
// @Router /api/projections [get]
func (h *AnalyticsHandler) Projections(c *fiber.Ctx) error {
	months := c.QueryInt("months", 3)

	result, err := h.projections.Project(c.Context(), months)
	if err != nil {
		h.logger.Error("Failed to compute projections", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute projections",
		})
	}
	return c.JSON(result)
}
