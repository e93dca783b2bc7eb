package reservas

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// Reglas de validación de reservas. Todas las funciones son puras y deterministas
// dada la fecha de referencia; los mensajes de error van en español porque se
// muestran tal cual al comensal.

// MaxPersonasPorReserva tope por reserva; grupos mayores deben llamar al restaurante.
const MaxPersonasPorReserva = 10

// DiasMaximosAnticipacion ventana de reserva: hoy .. hoy+30 días.
const DiasMaximosAnticipacion = 30

const (
	formatoFecha    = "02/01/2006"
	formatoFechaISO = "2006-01-02"
)

// Pasos reconocidos por ValidarPaso.
const (
	PasoNombre   = "nombre"
	PasoFecha    = "fecha"
	PasoHora     = "hora"
	PasoPersonas = "personas"
	PasoTelefono = "telefono"
	PasoEmail    = "email"
)

// ValidarPaso valida un campo individual durante la recopilación conversacional.
// La hora se valida aquí solo en formato y rango; la ventana de apertura depende
// de la fecha y se verifica en ValidarReserva.
func ValidarPaso(paso, valor string, hoy time.Time) (bool, string) {
	switch paso {
	case PasoNombre:
		return ValidarNombre(valor)
	case PasoFecha:
		return ValidarFecha(valor, hoy)
	case PasoHora:
		if _, err := aMinutos(valor); err != nil {
			return false, "Formato de hora inválido. Usá HH:MM, por ejemplo 20:30."
		}
		return true, ""
	case PasoPersonas:
		return ValidarPersonas(valor)
	case PasoTelefono:
		return ValidarTelefono(valor)
	case PasoEmail:
		return ValidarEmail(valor)
	default:
		return true, ""
	}
}

// ValidarNombre exige al menos 3 caracteres y un espacio (heurística nombre+apellido).
func ValidarNombre(nombre string) (bool, string) {
	nombre = strings.TrimSpace(nombre)
	if len(nombre) < 3 || !strings.Contains(nombre, " ") {
		return false, "Por favor indicanos tu nombre y apellido (mínimo 3 caracteres)."
	}
	return true, ""
}

// ParsearFecha acepta DD/MM/YYYY o YYYY-MM-DD y rechaza fechas de calendario
// inválidas (ej. 30 de febrero).
func ParsearFecha(valor string) (time.Time, error) {
	valor = strings.TrimSpace(valor)
	if f, err := time.Parse(formatoFecha, valor); err == nil {
		return f, nil
	}
	if f, err := time.Parse(formatoFechaISO, valor); err == nil {
		return f, nil
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", valor)
}

// NormalizarFecha convierte cualquier formato aceptado a DD/MM/YYYY.
func NormalizarFecha(valor string) (string, error) {
	f, err := ParsearFecha(valor)
	if err != nil {
		return "", err
	}
	return f.Format(formatoFecha), nil
}

// FechaAISO convierte una fecha normalizada DD/MM/YYYY a YYYY-MM-DD (columna DATE).
func FechaAISO(valor string) (string, error) {
	f, err := ParsearFecha(valor)
	if err != nil {
		return "", err
	}
	return f.Format(formatoFechaISO), nil
}

// ValidarFecha verifica formato y que la fecha caiga en [hoy, hoy+30 días].
func ValidarFecha(valor string, hoy time.Time) (bool, string) {
	f, err := ParsearFecha(valor)
	if err != nil {
		return false, "Formato de fecha inválido. Usá DD/MM/AAAA o AAAA-MM-DD."
	}
	hoyDia := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
	if f.Before(hoyDia) {
		return false, "Esa fecha ya pasó. Por favor elegí una fecha a partir de hoy."
	}
	limite := hoyDia.AddDate(0, 0, DiasMaximosAnticipacion)
	if f.After(limite) {
		return false, fmt.Sprintf("Solo tomamos reservas hasta el %s (30 días de anticipación).", limite.Format(formatoFecha))
	}
	return true, ""
}

// ValidarHora verifica formato HH:MM y que la hora caiga dentro de una franja
// abierta del día de semana que corresponde a la fecha (no es un chequeo aislado).
func ValidarHora(hora, fecha string, horario *Horario) (bool, string) {
	if _, err := aMinutos(hora); err != nil {
		return false, "Formato de hora inválido. Usá HH:MM, por ejemplo 20:30."
	}
	f, err := ParsearFecha(fecha)
	if err != nil {
		return false, "Formato de fecha inválido. Usá DD/MM/AAAA o AAAA-MM-DD."
	}
	if horario == nil {
		horario = HorarioPorDefecto()
	}
	dia := f.Weekday()
	if !horario.HoraPermitida(hora, dia) {
		return false, fmt.Sprintf("A esa hora estamos cerrados. El %s atendemos: %s.",
			strings.ToLower(nombreDia(dia)), horario.FormatearDia(dia))
	}
	return true, ""
}

// ValidarPersonas acepta la cantidad como texto y la valida en rango 1..10.
func ValidarPersonas(valor string) (bool, string) {
	n, err := strconv.Atoi(strings.TrimSpace(valor))
	if err != nil {
		return false, "La cantidad de personas debe ser un número entre 1 y 10."
	}
	return ValidarCantidadPersonas(n)
}

// ValidarCantidadPersonas valida la cantidad ya convertida a entero.
func ValidarCantidadPersonas(n int) (bool, string) {
	if n > MaxPersonasPorReserva {
		return false, "Para grupos de más de 10 personas, por favor llamanos directamente al restaurante."
	}
	if n < 1 {
		return false, "La cantidad de personas debe ser un número entre 1 y 10."
	}
	return true, ""
}

// ValidarTelefono exige al menos 8 dígitos tras quitar espacios, guiones y el signo +.
func ValidarTelefono(valor string) (bool, string) {
	digitos := SoloDigitos(valor)
	if len(digitos) < 8 {
		return false, "El teléfono debe tener al menos 8 dígitos."
	}
	return true, ""
}

// SoloDigitos limpia un teléfono dejando únicamente dígitos.
// Devuelve vacío si contiene caracteres que no sean dígitos, espacios, guiones o +.
func SoloDigitos(valor string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(valor) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '+':
			// separadores permitidos
		default:
			return ""
		}
	}
	return b.String()
}

// ValidarEmail chequeo de forma mínimo: local no vacío, un @ y un punto después.
func ValidarEmail(valor string) (bool, string) {
	valor = strings.TrimSpace(valor)
	at := strings.Index(valor, "@")
	if at < 1 || !strings.Contains(valor[at:], ".") {
		return false, "El email no parece válido. Revisalo por favor."
	}
	return true, ""
}

// ValidarReserva aplica todas las reglas sobre una reserva completa.
// Devuelve el primer error encontrado.
func ValidarReserva(r *entity.Reservation, hoy time.Time, horario *Horario) (bool, string) {
	if ok, msg := ValidarNombre(r.Nombre); !ok {
		return false, msg
	}
	if ok, msg := ValidarFecha(r.Fecha, hoy); !ok {
		return false, msg
	}
	if ok, msg := ValidarHora(r.Hora, r.Fecha, horario); !ok {
		return false, msg
	}
	if ok, msg := ValidarCantidadPersonas(r.Personas); !ok {
		return false, msg
	}
	if ok, msg := ValidarTelefono(r.Telefono); !ok {
		return false, msg
	}
	if ok, msg := ValidarEmail(r.Email); !ok {
		return false, msg
	}
	return true, ""
}
