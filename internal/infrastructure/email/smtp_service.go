package email

import (
	"fmt"
	"strings"

	"github.com/jhoicas/reservas-api/internal/application/ports"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

// Verificar en tiempo de compilación que SMTPService implementa EmailSender.
var _ ports.EmailSender = (*SMTPService)(nil)

// SMTPService adaptador de correo saliente sobre SMTP (gomail).
type SMTPService struct {
	cfg config.SMTPConfig
}

// NewSMTPService construye el adaptador con el remitente por defecto.
func NewSMTPService(cfg config.SMTPConfig) *SMTPService {
	return &SMTPService{cfg: cfg}
}

// SendReservationConfirmation envía el correo de confirmación de la reserva.
// Los emails sintéticos de WhatsApp (@whatsapp.temporal) no se envían: el cliente
// de ese canal recibe su confirmación por WhatsApp.
func (s *SMTPService) SendReservationConfirmation(reserva *entity.Reservation, restaurante *entity.Restaurant) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("email: SMTP_HOST no configurado")
	}
	if strings.HasSuffix(reserva.Email, "@whatsapp.temporal") {
		return nil
	}

	nombreRestaurante := "el restaurante"
	if restaurante != nil && restaurante.Name != "" {
		nombreRestaurante = restaurante.Name
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", reserva.Email)
	m.SetHeader("Subject", fmt.Sprintf("Confirmación de reserva en %s", nombreRestaurante))
	m.SetBody("text/html", cuerpoConfirmacion(reserva, nombreRestaurante))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("email: enviar confirmación: %w", err)
	}
	return nil
}

func cuerpoConfirmacion(r *entity.Reservation, nombreRestaurante string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>¡Reserva registrada en %s!</h2>", nombreRestaurante))
	b.WriteString("<p>Estos son los datos de tu reserva:</p><ul>")
	b.WriteString(fmt.Sprintf("<li><b>Nombre:</b> %s</li>", r.Nombre))
	b.WriteString(fmt.Sprintf("<li><b>Fecha:</b> %s</li>", r.Fecha))
	b.WriteString(fmt.Sprintf("<li><b>Hora:</b> %s</li>", r.Hora))
	b.WriteString(fmt.Sprintf("<li><b>Personas:</b> %d</li>", r.Personas))
	if r.Comentarios != "" {
		b.WriteString(fmt.Sprintf("<li><b>Comentarios:</b> %s</li>", r.Comentarios))
	}
	b.WriteString("</ul><p>¡Te esperamos!</p>")
	return b.String()
}
