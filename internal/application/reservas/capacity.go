package reservas

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	domreservas "github.com/jhoicas/reservas-api/internal/domain/reservas"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// CapacityUseCase verifica el cupo diario de un restaurante contra la suma de
// personas de las reservas confirmadas de esa fecha.
//
// Ante cualquier fallo de infraestructura (restaurante inaccesible, error de
// consulta) FALLA ABIERTO: informa disponibilidad con la capacidad por defecto
// en lugar de bloquear el flujo de reserva. Es una decisión deliberada de
// disponibilidad sobre consistencia heredada del sistema en producción; los
// tests la fijan para que nadie la "arregle" sin querer.
type CapacityUseCase struct {
	reservaRepo     repository.ReservationRepository
	restauranteRepo repository.RestaurantRepository
	log             *logger.Logger
}

// NewCapacityUseCase construye el caso de uso.
func NewCapacityUseCase(reservaRepo repository.ReservationRepository, restauranteRepo repository.RestaurantRepository, log *logger.Logger) *CapacityUseCase {
	return &CapacityUseCase{reservaRepo: reservaRepo, restauranteRepo: restauranteRepo, log: log}
}

// CheckCapacity devuelve (hayCupo, mensaje, cupoRestante) para la fecha dada.
// La fecha se acepta en DD/MM/YYYY o YYYY-MM-DD.
func (uc *CapacityUseCase) CheckCapacity(restaurantID, fecha string, personas int) (bool, string, int) {
	fechaNorm, err := domreservas.NormalizarFecha(fecha)
	if err != nil {
		fechaNorm = fecha
	}

	restaurante, err := uc.restauranteRepo.GetByID(restaurantID)
	if err != nil {
		uc.logFalloAbierto("buscar restaurante", restaurantID, err)
		return true, "", domreservas.CapacidadPorDefecto
	}

	capacidad := domreservas.CapacidadEfectiva(restaurante)

	ocupado, err := uc.reservaRepo.SumConfirmedByDate(restaurantID, fechaNorm)
	if err != nil {
		uc.logFalloAbierto("sumar reservas confirmadas", restaurantID, err)
		return true, "", domreservas.CapacidadPorDefecto
	}

	restante := capacidad - ocupado
	if personas > restante {
		if restante <= 0 {
			return false, "Lo sentimos, no nos queda cupo para ese día.", 0
		}
		return false, fmt.Sprintf("Lo sentimos, solo tenemos capacidad para %d personas más ese día.", restante), restante
	}
	return true, "¡Tenemos lugar! Te esperamos.", restante
}

// ValidarDisponibilidad valida fecha, hora y personas contra las reglas del
// restaurante y después consulta el cupo. Los errores de formato devuelven un
// error envolviendo domain.ErrInvalidInput (el handler responde 400); los
// rechazos de negocio devuelven Disponible=false con HTTP 200.
func (uc *CapacityUseCase) ValidarDisponibilidad(in dto.ValidarDisponibilidadRequest) (*dto.DisponibilidadResponse, error) {
	if strings.TrimSpace(in.RestaurantID) == "" || strings.TrimSpace(in.Fecha) == "" ||
		strings.TrimSpace(in.Hora) == "" || in.Personas.String() == "" {
		return nil, fmt.Errorf("%w: restaurante_id, fecha, hora y personas son requeridos", domain.ErrInvalidInput)
	}
	personas64, err := in.Personas.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: la cantidad de personas debe ser un número", domain.ErrInvalidInput)
	}
	personas := int(personas64)

	fecha, err := domreservas.NormalizarFecha(in.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: formato de fecha inválido, usá DD/MM/AAAA o AAAA-MM-DD", domain.ErrInvalidInput)
	}

	if ok, msg := domreservas.ValidarFecha(fecha, time.Now()); !ok {
		return &dto.DisponibilidadResponse{Disponible: false, Mensaje: msg}, nil
	}

	// El horario también falla abierto: sin restaurante se usa el horario por defecto.
	restaurante, _ := uc.restauranteRepo.GetByID(in.RestaurantID)
	horario := domreservas.HorarioDesdeRestaurante(restaurante)
	if ok, msg := domreservas.ValidarHora(in.Hora, fecha, horario); !ok {
		return &dto.DisponibilidadResponse{Disponible: false, Mensaje: msg}, nil
	}
	if ok, msg := domreservas.ValidarCantidadPersonas(personas); !ok {
		return &dto.DisponibilidadResponse{Disponible: false, Mensaje: msg}, nil
	}

	hayCupo, msg, restante := uc.CheckCapacity(in.RestaurantID, fecha, personas)
	return &dto.DisponibilidadResponse{Disponible: hayCupo, Mensaje: msg, CapacidadRestante: restante}, nil
}

func (uc *CapacityUseCase) logFalloAbierto(op, restaurantID string, err error) {
	if uc.log == nil {
		return
	}
	uc.log.Warn().
		Err(err).
		Str("restaurante_id", restaurantID).
		Str("operacion", op).
		Msg("chequeo de capacidad falló; se asume disponibilidad (fail-open)")
}
