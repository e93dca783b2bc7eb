package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/reservas"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain"
)

// ReservationHandler maneja el alta pública de reservas, la validación de
// disponibilidad y las operaciones del panel de administración.
type ReservationHandler struct {
	registrar *reservas.RegisterUseCase
	capacidad *reservas.CapacityUseCase
	admin     *usecase.ReservationAdminUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(registrar *reservas.RegisterUseCase, capacidad *reservas.CapacityUseCase, admin *usecase.ReservationAdminUseCase) *ReservationHandler {
	return &ReservationHandler{registrar: registrar, capacidad: capacidad, admin: admin}
}

// Create godoc
// @Summary      Registrar reserva
// @Description  Los rechazos de negocio (fuera de horario, sin cupo) responden 200 con success=false.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearReservaRequest  true  "Datos de la reserva"
// @Success      200   {object}  dto.ResultadoReserva
// @Failure      400   {object}  dto.ResultadoReserva
// @Failure      500   {object}  dto.ResultadoReserva
// @Router       /api/reservas [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RestaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurante_id es requerido"})
	}
	out := h.registrar.Registrar(in)
	return c.Status(out.StatusCode).JSON(out)
}

// ValidarDisponibilidad godoc
// @Summary      Validar disponibilidad
// @Description  Valida fecha, hora y personas contra el horario del restaurante y el cupo del día.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarDisponibilidadRequest  true  "Fecha, hora y personas"
// @Success      200   {object}  dto.DisponibilidadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reservas/validar_disponibilidad [post]
func (h *ReservationHandler) ValidarDisponibilidad(c *fiber.Ctx) error {
	var in dto.ValidarDisponibilidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.capacidad.ValidarDisponibilidad(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reservas por fecha (panel admin)
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        fecha  query  string  true  "DD/MM/YYYY o YYYY-MM-DD"
// @Success      200    {array}   dto.ReservaResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/reservas [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	fecha := c.Query("fecha")
	if fecha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha es requerida"})
	}
	out, err := h.admin.ListByDate(restaurantID, fecha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una reserva (panel admin)
// @Tags         reservas
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                       true  "ID de la reserva"
// @Param        body  body  dto.ActualizarEstadoRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/reservas/{id}/estado [patch]
func (h *ReservationHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ActualizarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.admin.UpdateStatus(id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido: usar Pendiente, Confirmada o Cancelada"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
