package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// ReservationRepository contrato de persistencia de reservas.
// Las fechas se reciben normalizadas como DD/MM/YYYY; el adaptador convierte a DATE.
type ReservationRepository interface {
	Create(r *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	ListByRestaurantAndDate(restaurantID, fecha string) ([]*entity.Reservation, error)
	// SumConfirmedByDate suma las personas de las reservas Confirmadas del día.
	SumConfirmedByDate(restaurantID, fecha string) (int, error)
	UpdateStatus(id string, status entity.ReservationStatus) error
}
