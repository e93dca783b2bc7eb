package reservas

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/ports"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	domreservas "github.com/jhoicas/reservas-api/internal/domain/reservas"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// RegisterUseCase orquesta el alta de una reserva: presencia de campos →
// coerción de personas → normalización de fecha → validación completa →
// cupo → inserción (Pendiente) → email → WhatsApp → mensaje resumen.
//
// Solo el fallo de persistencia aborta con resultado 500. Las notificaciones
// son best-effort: no hay transacción que las abarque, y el éxito parcial
// (reserva guardada, notificación caída) es comportamiento definido que se
// informa con las banderas EmailSent/WhatsAppSent.
type RegisterUseCase struct {
	reservaRepo     repository.ReservationRepository
	restauranteRepo repository.RestaurantRepository
	capacidad       *CapacityUseCase
	mailer          ports.EmailSender
	whatsapp        ports.WhatsAppSender
	codigoPais      string // prefijo E.164 cuando el teléfono llega sin "+"
	log             *logger.Logger
}

// NewRegisterUseCase construye el caso de uso. mailer y whatsapp pueden ser nil
// (canal no configurado); en ese caso la bandera correspondiente queda en false.
func NewRegisterUseCase(
	reservaRepo repository.ReservationRepository,
	restauranteRepo repository.RestaurantRepository,
	capacidad *CapacityUseCase,
	mailer ports.EmailSender,
	whatsapp ports.WhatsAppSender,
	codigoPais string,
	log *logger.Logger,
) *RegisterUseCase {
	if codigoPais == "" {
		codigoPais = "+54"
	}
	return &RegisterUseCase{
		reservaRepo:     reservaRepo,
		restauranteRepo: restauranteRepo,
		capacidad:       capacidad,
		mailer:          mailer,
		whatsapp:        whatsapp,
		codigoPais:      codigoPais,
		log:             log,
	}
}

// Registrar registra una reserva llegada por web o API.
func (uc *RegisterUseCase) Registrar(in dto.CrearReservaRequest) *dto.ResultadoReserva {
	return uc.registrar(in, false)
}

// RegistrarDesdeWhatsApp variante del mismo pipeline para el canal WhatsApp:
// no exige email (se sustituye uno sintético derivado del teléfono) y etiqueta
// el origen como "whatsapp".
func (uc *RegisterUseCase) RegistrarDesdeWhatsApp(in dto.CrearReservaRequest) *dto.ResultadoReserva {
	return uc.registrar(in, true)
}

func (uc *RegisterUseCase) registrar(in dto.CrearReservaRequest, desdeWhatsApp bool) *dto.ResultadoReserva {
	// 1. Presencia de campos obligatorios.
	faltantes := camposFaltantes(in, desdeWhatsApp)
	if len(faltantes) > 0 {
		return &dto.ResultadoReserva{
			Success:    false,
			Error:      "Faltan campos obligatorios: " + strings.Join(faltantes, ", "),
			StatusCode: 400,
		}
	}

	// 2. Coerción de personas (puede llegar como texto).
	personas64, err := in.Personas.Int64()
	if err != nil {
		return &dto.ResultadoReserva{
			Success:    false,
			Error:      "La cantidad de personas debe ser un número.",
			StatusCode: 400,
		}
	}
	personas := int(personas64)

	// 3. Normalización de fecha: siempre se guarda y valida como DD/MM/YYYY.
	fecha, err := domreservas.NormalizarFecha(in.Fecha)
	if err != nil {
		return &dto.ResultadoReserva{
			Success:    false,
			Error:      "Formato de fecha inválido. Usá DD/MM/AAAA o AAAA-MM-DD.",
			StatusCode: 400,
		}
	}

	email := strings.TrimSpace(in.Email)
	if desdeWhatsApp && email == "" {
		email = emailSintetico(in.Telefono)
	}

	origen := in.Origen
	if desdeWhatsApp {
		origen = entity.OrigenWhatsApp
	} else if origen == "" {
		origen = entity.OrigenWeb
	}

	now := time.Now()
	reserva := &entity.Reservation{
		ID:           uuid.New().String(),
		RestaurantID: in.RestaurantID,
		Nombre:       strings.TrimSpace(in.Nombre),
		Fecha:        fecha,
		Hora:         strings.TrimSpace(in.Hora),
		Personas:     personas,
		Telefono:     strings.TrimSpace(in.Telefono),
		Email:        email,
		Comentarios:  strings.TrimSpace(in.Comentarios),
		Origen:       origen,
		Status:       entity.StatusPendiente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Validación completa con el horario del restaurante.
	// Si el restaurante no se puede cargar se valida con el horario por defecto,
	// coherente con la política fail-open del chequeo de cupo.
	restaurante, _ := uc.restauranteRepo.GetByID(in.RestaurantID)
	horario := domreservas.HorarioDesdeRestaurante(restaurante)
	if ok, msg := domreservas.ValidarReserva(reserva, now, horario); !ok {
		return &dto.ResultadoReserva{Success: false, Message: msg, StatusCode: 200}
	}

	if hayCupo, msg, _ := uc.capacidad.CheckCapacity(in.RestaurantID, fecha, personas); !hayCupo {
		return &dto.ResultadoReserva{Success: false, Message: msg, StatusCode: 200}
	}

	// 5. Persistencia: único fallo fatal después de la validación.
	if err := uc.reservaRepo.Create(reserva); err != nil {
		uc.log.Error().Err(err).Str("restaurante_id", in.RestaurantID).Msg("insertar reserva")
		return &dto.ResultadoReserva{
			Success:    false,
			Error:      "No pudimos registrar la reserva. Por favor intentá de nuevo.",
			StatusCode: 500,
		}
	}

	// 6-7. Notificaciones best-effort; los fallos solo apagan la bandera.
	emailSent := uc.notificarEmail(reserva, restaurante)
	whatsappSent := uc.notificarWhatsApp(reserva, restaurante)

	return &dto.ResultadoReserva{
		Success:       true,
		Message:       mensajeResumen(reserva, emailSent, whatsappSent),
		ReservationID: reserva.ID,
		EmailSent:     emailSent,
		WhatsAppSent:  whatsappSent,
		StatusCode:    200,
	}
}

func (uc *RegisterUseCase) notificarEmail(reserva *entity.Reservation, restaurante *entity.Restaurant) bool {
	if uc.mailer == nil {
		return false
	}
	if err := uc.mailer.SendReservationConfirmation(reserva, restaurante); err != nil {
		uc.log.Warn().Err(err).Str("reserva_id", reserva.ID).Msg("envío de email falló")
		return false
	}
	return true
}

func (uc *RegisterUseCase) notificarWhatsApp(reserva *entity.Reservation, restaurante *entity.Restaurant) bool {
	if uc.whatsapp == nil {
		return false
	}
	destino := NormalizarE164(reserva.Telefono, uc.codigoPais)
	if err := uc.whatsapp.SendWhatsApp(destino, cuerpoWhatsApp(reserva, restaurante)); err != nil {
		uc.log.Warn().Err(err).Str("reserva_id", reserva.ID).Msg("envío de WhatsApp falló")
		return false
	}
	return true
}

// camposFaltantes lista los campos obligatorios ausentes. El canal WhatsApp no exige email.
func camposFaltantes(in dto.CrearReservaRequest, desdeWhatsApp bool) []string {
	var faltan []string
	if strings.TrimSpace(in.Nombre) == "" {
		faltan = append(faltan, "nombre")
	}
	if strings.TrimSpace(in.Fecha) == "" {
		faltan = append(faltan, "fecha")
	}
	if strings.TrimSpace(in.Hora) == "" {
		faltan = append(faltan, "hora")
	}
	if in.Personas.String() == "" {
		faltan = append(faltan, "personas")
	}
	if strings.TrimSpace(in.Telefono) == "" {
		faltan = append(faltan, "telefono")
	}
	if !desdeWhatsApp && strings.TrimSpace(in.Email) == "" {
		faltan = append(faltan, "email")
	}
	return faltan
}

// NormalizarE164 limpia el teléfono y antepone el código de país si falta.
func NormalizarE164(telefono, codigoPais string) string {
	limpio := strings.TrimSpace(telefono)
	tienePrefijo := strings.HasPrefix(limpio, "+")
	digitos := domreservas.SoloDigitos(limpio)
	if digitos == "" {
		return limpio
	}
	if tienePrefijo {
		return "+" + digitos
	}
	return codigoPais + digitos
}

func emailSintetico(telefono string) string {
	return domreservas.SoloDigitos(telefono) + "@whatsapp.temporal"
}

func cuerpoWhatsApp(r *entity.Reservation, rest *entity.Restaurant) string {
	nombreRest := "el restaurante"
	if rest != nil && rest.Name != "" {
		nombreRest = rest.Name
	}
	return fmt.Sprintf(
		"¡Hola %s! Recibimos tu reserva en %s:\n📅 %s a las %s\n👥 %d personas\n\nEstado: %s. Te avisamos cuando esté confirmada. ¡Gracias!",
		r.Nombre, nombreRest, r.Fecha, r.Hora, r.Personas, r.Status,
	)
}

func mensajeResumen(r *entity.Reservation, emailSent, whatsappSent bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "¡Reserva registrada! %s, te esperamos el %s a las %s (%d personas).",
		r.Nombre, r.Fecha, r.Hora, r.Personas)
	if emailSent {
		b.WriteString(" Te enviamos la confirmación por email.")
	}
	if whatsappSent {
		b.WriteString(" También te escribimos por WhatsApp.")
	}
	if !emailSent && !whatsappSent {
		b.WriteString(" No pudimos enviarte la confirmación; guardá este número de reserva.")
	}
	return b.String()
}
