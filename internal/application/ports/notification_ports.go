package ports

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// WhatsAppSender puerto de salida para mensajes WhatsApp.
// El destino debe ir en formato E.164 ("+549112233...").
type WhatsAppSender interface {
	SendWhatsApp(to, body string) error
}

// EmailSender puerto de salida para el correo de confirmación de reserva.
type EmailSender interface {
	SendReservationConfirmation(reserva *entity.Reservation, restaurante *entity.Restaurant) error
}
