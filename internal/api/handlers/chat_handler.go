package handlers

import (
	"errors"
	"fmt"

	"finbuddy/internal/dto"
	"finbuddy/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chat   *service.ChatService
	logger *zap.Logger
}

func NewChatHandler(chat *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

// Chat godoc
// @Summary Conversational turn against the finance persona
// @Accept json
// @Produce json
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} dto.ChatError
// @Failure 503 {object} dto.ChatError
// @Failure 504 {object} dto.ChatError
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
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

	reply, err := h.chat.Respond(c.Context(), &req)
	if err != nil {
		status, envelope := classifyChatError(err)
		h.logger.Error("Chat completion failed",
			zap.Error(err),
			zap.String("error_kind", envelope.ErrorKind),
		)
		return c.Status(status).JSON(envelope)
	}

	return c.JSON(dto.ChatResponse{Response: reply})
}

// classifyChatError maps each upstream failure class to its own status
// code and user-facing message. Upstream detail stays in the logs.
func classifyChatError(err error) (int, dto.ChatError) {
	var upstream *service.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return fiber.StatusBadGateway, dto.ChatError{
			ErrorKind: "upstream_error",
			Message:   fmt.Sprintf("Sorry, the AI service returned an error: %d. Please check your API key or try again later.", upstream.StatusCode),
		}
	case errors.Is(err, service.ErrTimeout):
		return fiber.StatusGatewayTimeout, dto.ChatError{
			ErrorKind: "timeout",
			Message:   "The AI service timed out. Please try again.",
		}
	case errors.Is(err, service.ErrConnection):
		return fiber.StatusServiceUnavailable, dto.ChatError{
			ErrorKind: "connection_failed",
			Message:   "Cannot connect to the AI service. Please check your internet connection.",
		}
	default:
		return fiber.StatusInternalServerError, dto.ChatError{
			ErrorKind: "internal",
			Message:   "The AI service failed unexpectedly. Please try again.",
		}
	}
}
