package handlers

import (
	"time"

	"finbuddy/internal/dto"
	"finbuddy/internal/models"
	"finbuddy/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goals  *repository.GoalRepository
	logger *zap.Logger
}

func NewGoalHandler(goals *repository.GoalRepository, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goals:  goals,
		logger: logger,
	}
}

// List returns all goals, soonest deadline first.
func (h *GoalHandler) List(c *fiber.Ctx) error {
	goals, err := h.goals.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list goals", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list goals",
		})
	}

	responses := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, goalToResponse(g))
	}
	return c.JSON(responses)
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	_, priority := req.WithDefaults()
	id, err := h.goals.Create(c.Context(), &models.Goal{
		Name:     req.Name,
		Target:   *req.Target,
		Deadline: req.Deadline,
		Priority: priority,
	})
	if err != nil {
		h.logger.Error("Failed to create goal", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create goal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     id,
		"status": "success",
	})
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	current, priority := req.WithDefaults()
	if err := h.goals.Update(c.Context(), int64(id), &models.Goal{
		Name:     req.Name,
		Target:   *req.Target,
		Current:  current,
		Deadline: req.Deadline,
		Priority: priority,
	}); err != nil {
		h.logger.Error("Failed to update goal", zap.Error(err), zap.Int("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update goal",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := h.goals.Delete(c.Context(), int64(id)); err != nil {
		h.logger.Error("Failed to delete goal", zap.Error(err), zap.Int("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete goal",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func goalToResponse(g *models.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:        g.ID,
		Name:      g.Name,
		Target:    g.Target,
		Current:   g.Current,
		Deadline:  g.Deadline,
		Priority:  g.Priority,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}
