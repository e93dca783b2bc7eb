package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
	domreservas "github.com/jhoicas/reservas-api/internal/domain/reservas"
)

// mensajeFallback respuesta genérica cuando el LLM no está disponible.
// El estado de la conversación se conserva para que el usuario pueda reintentar.
const mensajeFallback = "Disculpá, estoy teniendo un problema técnico en este momento. ¿Me repetís tu mensaje en unos segundos?"

const instruccionesBase = `Sos el asistente virtual de reservas del restaurante. Tu estilo:
- Respuestas CORTAS Y DIRECTAS (máximo 2-3 líneas), en español rioplatense.
- NUNCA repitas saludos si ya saludaste.
- NUNCA pidas datos que ya fueron proporcionados.
- Para reservar necesitás EN ORDEN: nombre y apellido, fecha, hora, cantidad de personas, teléfono y email.
- Pedí UN solo dato por mensaje.
- No inventes disponibilidad ni confirmes reservas por tu cuenta: el sistema valida y confirma.
- Si piden más de 10 personas, indicá que llamen directamente al restaurante.`

// promptSistema arma el prompt de sistema con la identidad del restaurante,
// sus horarios formateados y la ventana de validez de reservas (hoy .. hoy+30 días).
func promptSistema(rest *entity.Restaurant, horario *domreservas.Horario, hoy time.Time) string {
	nombre := "el restaurante"
	direccion := ""
	if rest != nil {
		if rest.Name != "" {
			nombre = rest.Name
		}
		direccion = rest.Address
	}

	limite := hoy.AddDate(0, 0, domreservas.DiasMaximosAnticipacion)

	var b strings.Builder
	fmt.Fprintf(&b, "Trabajás para %s.", nombre)
	if direccion != "" {
		fmt.Fprintf(&b, " Dirección: %s.", direccion)
	}
	fmt.Fprintf(&b, "\nHoy es %s. Se aceptan reservas desde hoy hasta el %s inclusive.\n",
		hoy.Format("02/01/2006"), limite.Format("02/01/2006"))
	b.WriteString("\nHorarios de atención:\n")
	b.WriteString(horario.Formatear())
	b.WriteString("\n\n")
	b.WriteString(instruccionesBase)
	return b.String()
}

// mensajeConfirmacion resume los datos recopilados y pide la confirmación final.
func mensajeConfirmacion(datos map[string]string) string {
	var b strings.Builder
	b.WriteString("¡Ya tengo todo! Revisá los datos de tu reserva:\n")
	fmt.Fprintf(&b, "👤 %s\n", datos["nombre"])
	fmt.Fprintf(&b, "📅 %s a las %s\n", datos["fecha"], datos["hora"])
	fmt.Fprintf(&b, "👥 %s personas\n", datos["personas"])
	fmt.Fprintf(&b, "📞 %s\n", datos["telefono"])
	if email := datos["email"]; email != "" && !strings.HasSuffix(email, "@whatsapp.temporal") {
		fmt.Fprintf(&b, "✉️ %s\n", email)
	}
	b.WriteString("\n¿Confirmás la reserva? (sí / no)")
	return b.String()
}
