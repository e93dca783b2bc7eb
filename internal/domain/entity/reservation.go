package entity

import "time"

// ReservationStatus ciclo de vida de una reserva. Las reservas nunca se borran:
// cancelar es un cambio de estado.
type ReservationStatus string

const (
	StatusPendiente  ReservationStatus = "Pendiente"
	StatusConfirmada ReservationStatus = "Confirmada"
	StatusCancelada  ReservationStatus = "Cancelada"
)

// Canales de origen de una reserva.
const (
	OrigenWeb      = "web"
	OrigenWhatsApp = "whatsapp"
	OrigenAPI      = "api"
)

// Reservation representa una reserva de mesa.
// Fecha se maneja normalizada como DD/MM/YYYY; el repositorio la convierte a DATE ISO.
type Reservation struct {
	ID           string
	RestaurantID string
	Nombre       string
	Fecha        string // DD/MM/YYYY
	Hora         string // HH:MM
	Personas     int
	Telefono     string
	Email        string
	Comentarios  string
	Origen       string // ver constantes Origen*
	Status       ReservationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Cancelar marca la reserva como cancelada.
func (r *Reservation) Cancelar() {
	r.Status = StatusCancelada
	r.UpdatedAt = time.Now()
}

// Confirmar marca la reserva como confirmada.
func (r *Reservation) Confirmar() {
	r.Status = StatusConfirmada
	r.UpdatedAt = time.Now()
}
