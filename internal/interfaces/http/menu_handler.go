package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain"
)

// MenuHandler maneja el menú digital: lectura pública y reemplazo desde el panel.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Menú del restaurante (público)
// @Tags         menu
// @Produce      json
// @Param        restaurantId  path  string  true  "ID del restaurante"
// @Success      200  {array}  dto.ItemMenuResponse
// @Router       /api/restaurantes/{restaurantId}/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurantId")
	if restaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "restaurantId es requerido"})
	}
	out, err := h.uc.List(restaurantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar el menú completo (panel admin)
// @Description  Borra el menú actual e inserta los ítems nuevos en una sola transacción.
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReemplazarMenuRequest  true  "Ítems del menú"
// @Success      200   {array}   dto.ItemMenuResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/menu [put]
func (h *MenuHandler) Replace(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	var in dto.ReemplazarMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Replace(c.Context(), restaurantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada ítem necesita nombre y precio no negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
