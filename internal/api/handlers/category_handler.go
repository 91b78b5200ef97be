package handlers

import (
	"errors"

	"finbuddy/internal/dto"
	"finbuddy/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories *repository.CategoryRepository
	logger     *zap.Logger
}

func NewCategoryHandler(categories *repository.CategoryRepository, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger,
	}
}

// List returns category names as a plain string array.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	names, err := h.categories.ListNames(c.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}
	return c.JSON(names)
}

// Create inserts a unique category name. A duplicate fails with 400 and
// leaves the store unchanged.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
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

	if err := h.categories.Create(c.Context(), req.Name); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category already exists",
			})
		}
		h.logger.Error("Failed to create category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}
