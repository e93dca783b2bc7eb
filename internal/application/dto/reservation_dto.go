package dto

import (
	"encoding/json"
	"time"
)

// CrearReservaRequest cuerpo de POST /api/reservas.
// Personas llega como número o como texto ("4"); json.Number acepta ambos.
type CrearReservaRequest struct {
	RestaurantID string      `json:"restaurante_id"`
	Nombre       string      `json:"nombre"`
	Fecha        string      `json:"fecha"` // DD/MM/YYYY o YYYY-MM-DD
	Hora         string      `json:"hora"`  // HH:MM
	Personas     json.Number `json:"personas"`
	Telefono     string      `json:"telefono"`
	Email        string      `json:"email"`
	Comentarios  string      `json:"comentarios"`
	Origen       string      `json:"origen"`
}

// ResultadoReserva resultado estructurado del registro de una reserva.
// Las notificaciones son best-effort: sus banderas se informan por separado
// y no afectan Success.
type ResultadoReserva struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	ReservationID string `json:"reservation_id,omitempty"`
	EmailSent     bool   `json:"email_sent"`
	WhatsAppSent  bool   `json:"whatsapp_sent"`
	StatusCode    int    `json:"-"`
}

// ValidarDisponibilidadRequest cuerpo de POST /api/reservas/validar_disponibilidad.
type ValidarDisponibilidadRequest struct {
	RestaurantID string      `json:"restaurante_id"`
	Fecha        string      `json:"fecha"` // YYYY-MM-DD
	Hora         string      `json:"hora"`
	Personas     json.Number `json:"personas"`
}

// DisponibilidadResponse respuesta de la validación de disponibilidad.
// Los rechazos de negocio (fuera de horario, sin cupo) van con HTTP 200 y Disponible=false.
type DisponibilidadResponse struct {
	Disponible        bool   `json:"disponible"`
	Mensaje           string `json:"mensaje"`
	CapacidadRestante int    `json:"capacidad_restante"`
}

// ReservaResponse reserva expuesta al panel de administración.
type ReservaResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurante_id"`
	Nombre       string    `json:"nombre"`
	Fecha        string    `json:"fecha"`
	Hora         string    `json:"hora"`
	Personas     int       `json:"personas"`
	Telefono     string    `json:"telefono"`
	Email        string    `json:"email"`
	Comentarios  string    `json:"comentarios,omitempty"`
	Origen       string    `json:"origen"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActualizarEstadoRequest cambio de estado de una reserva.
type ActualizarEstadoRequest struct {
	Estado string `json:"estado"` // Pendiente | Confirmada | Cancelada
}
