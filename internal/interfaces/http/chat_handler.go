package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/chat"
	"github.com/jhoicas/reservas-api/internal/application/dto"
)

// ChatHandler maneja el chatbot de reservas del canal web.
type ChatHandler struct {
	uc *chat.ConversationUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *chat.ConversationUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Message godoc
// @Summary      Mensaje al chatbot de reservas
// @Description  Conversación con estado por user_id. "datos" transporta campos de la reserva extraídos de forma estructurada.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Mensaje del usuario"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RestaurantID == "" || in.UserID == "" || in.Mensaje == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurante_id, user_id y mensaje son requeridos"})
	}
	out, err := h.uc.ProcesarMensaje(c.Context(), in, false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
