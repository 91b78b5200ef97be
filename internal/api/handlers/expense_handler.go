package handlers

import (
	"time"

	"finbuddy/internal/dto"
	"finbuddy/internal/models"
	"finbuddy/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenses *repository.ExpenseRepository
	logger   *zap.Logger
}

func NewExpenseHandler(expenses *repository.ExpenseRepository, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenses: expenses,
		logger:   logger,
	}
}

// List godoc
// @Summary List all expenses, newest date first
// @Produce json
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	expenses, err := h.expenses.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list expenses",
		})
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		responses = append(responses, expenseToResponse(exp))
	}
	return c.JSON(responses)
}

// Create godoc
// @Summary Create an expense
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req dto.ExpenseRequest
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

	id, err := h.expenses.Create(c.Context(), &models.Expense{
		Amount:        *req.Amount,
		Category:      req.Category,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	})
	if err != nil {
		h.logger.Error("Failed to create expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create expense",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     id,
		"status": "success",
	})
}

// Update overwrites every mutable field of the expense; partial patches
// are not supported.
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	var req dto.ExpenseRequest
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

	if err := h.expenses.Update(c.Context(), int64(id), &models.Expense{
		Amount:        *req.Amount,
		Category:      req.Category,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	}); err != nil {
		h.logger.Error("Failed to update expense", zap.Error(err), zap.Int("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update expense",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// Delete removes the expense. A missing id still returns the success
// envelope.
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	if err := h.expenses.Delete(c.Context(), int64(id)); err != nil {
		h.logger.Error("Failed to delete expense", zap.Error(err), zap.Int("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete expense",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

func expenseToResponse(e *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:            e.ID,
		Amount:        e.Amount,
		Category:      e.Category,
		Date:          e.Date,
		PaymentMethod: e.PaymentMethod,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
