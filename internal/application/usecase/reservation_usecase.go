package usecase

import (
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	domreservas "github.com/jhoicas/reservas-api/internal/domain/reservas"
)

// ReservationAdminUseCase operaciones del panel de administración sobre reservas:
// listado por fecha y cambio de estado. Las reservas nunca se borran.
type ReservationAdminUseCase struct {
	repo repository.ReservationRepository
}

// NewReservationAdminUseCase construye el caso de uso.
func NewReservationAdminUseCase(repo repository.ReservationRepository) *ReservationAdminUseCase {
	return &ReservationAdminUseCase{repo: repo}
}

// ListByDate lista las reservas de un restaurante en una fecha (DD/MM/YYYY o ISO).
func (uc *ReservationAdminUseCase) ListByDate(restaurantID, fecha string) ([]*dto.ReservaResponse, error) {
	fechaNorm, err := domreservas.NormalizarFecha(fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByRestaurantAndDate(restaurantID, fechaNorm)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReservaResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReservaResponse(r))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una reserva (Pendiente | Confirmada | Cancelada).
func (uc *ReservationAdminUseCase) UpdateStatus(id string, in dto.ActualizarEstadoRequest) error {
	estado := entity.ReservationStatus(in.Estado)
	switch estado {
	case entity.StatusPendiente, entity.StatusConfirmada, entity.StatusCancelada:
	default:
		return domain.ErrInvalidInput
	}
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, estado)
}

func toReservaResponse(r *entity.Reservation) *dto.ReservaResponse {
	return &dto.ReservaResponse{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		Nombre:       r.Nombre,
		Fecha:        r.Fecha,
		Hora:         r.Hora,
		Personas:     r.Personas,
		Telefono:     r.Telefono,
		Email:        r.Email,
		Comentarios:  r.Comentarios,
		Origen:       r.Origen,
		Estado:       string(r.Status),
		CreatedAt:    r.CreatedAt,
	}
}
