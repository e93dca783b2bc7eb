package reservas

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// CapacidadPorDefecto cupo diario asumido cuando el restaurante no configuró ninguno.
const CapacidadPorDefecto = 100

// Ventana franja horaria de servicio, extremos inclusive. "24:00" es un cierre válido (medianoche).
type Ventana struct {
	Abre   string
	Cierra string
}

// DiaHorario franjas de almuerzo y cena de un día. Puntero nil = sin servicio en esa franja.
type DiaHorario struct {
	Cerrado  bool
	Almuerzo *Ventana
	Cena     *Ventana
}

// Horario horarios normalizados de un restaurante, indexados por día de semana.
// Se construye una sola vez al cargar la configuración, con precedencia explícita:
// horarios estructurados del restaurante > valores por defecto del día.
type Horario struct {
	dias [7]DiaHorario
}

// HorarioPorDefecto ventanas estándar: almuerzo 12:00-15:00 y cena 19:00-23:30
// de lunes a viernes; almuerzo 12:00-16:00 y cena 19:00-24:00 los fines de semana.
func HorarioPorDefecto() *Horario {
	var h Horario
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d == time.Saturday || d == time.Sunday {
			h.dias[d] = DiaHorario{
				Almuerzo: &Ventana{Abre: "12:00", Cierra: "16:00"},
				Cena:     &Ventana{Abre: "19:00", Cierra: "24:00"},
			}
			continue
		}
		h.dias[d] = DiaHorario{
			Almuerzo: &Ventana{Abre: "12:00", Cierra: "15:00"},
			Cena:     &Ventana{Abre: "19:00", Cierra: "23:30"},
		}
	}
	return &h
}

// HorarioDesdeRestaurante normaliza los horarios configurados del restaurante.
// Los días sin configuración estructurada conservan la ventana por defecto.
func HorarioDesdeRestaurante(r *entity.Restaurant) *Horario {
	h := HorarioPorDefecto()
	if r == nil {
		return h
	}
	for _, oh := range r.Hours {
		if oh.Weekday < time.Sunday || oh.Weekday > time.Saturday {
			continue
		}
		dia := DiaHorario{Cerrado: oh.Closed}
		if !oh.Closed {
			if oh.LunchOpen != "" && oh.LunchClose != "" {
				dia.Almuerzo = &Ventana{Abre: oh.LunchOpen, Cierra: oh.LunchClose}
			}
			if oh.DinnerOpen != "" && oh.DinnerClose != "" {
				dia.Cena = &Ventana{Abre: oh.DinnerOpen, Cierra: oh.DinnerClose}
			}
		}
		h.dias[oh.Weekday] = dia
	}
	return h
}

// Dia devuelve las franjas del día indicado.
func (h *Horario) Dia(d time.Weekday) DiaHorario {
	return h.dias[d]
}

// HoraPermitida indica si la hora "HH:MM" cae dentro de alguna franja abierta del día.
func (h *Horario) HoraPermitida(hora string, d time.Weekday) bool {
	min, err := aMinutos(hora)
	if err != nil {
		return false
	}
	dia := h.dias[d]
	if dia.Cerrado {
		return false
	}
	return dentroDe(min, dia.Almuerzo) || dentroDe(min, dia.Cena)
}

// Formatear arma una descripción legible de los horarios, una línea por día,
// para el prompt del sistema y los mensajes de error.
func (h *Horario) Formatear() string {
	var b strings.Builder
	for d := time.Monday; d <= time.Saturday; d++ {
		b.WriteString(nombreDia(d) + ": " + h.FormatearDia(d) + "\n")
	}
	b.WriteString(nombreDia(time.Sunday) + ": " + h.FormatearDia(time.Sunday))
	return b.String()
}

// FormatearDia describe las franjas de un día ("almuerzo 12:00-15:00, cena 19:00-23:30").
func (h *Horario) FormatearDia(d time.Weekday) string {
	dia := h.dias[d]
	if dia.Cerrado {
		return "cerrado"
	}
	var partes []string
	if dia.Almuerzo != nil {
		partes = append(partes, fmt.Sprintf("almuerzo %s-%s", dia.Almuerzo.Abre, dia.Almuerzo.Cierra))
	}
	if dia.Cena != nil {
		partes = append(partes, fmt.Sprintf("cena %s-%s", dia.Cena.Abre, dia.Cena.Cierra))
	}
	if len(partes) == 0 {
		return "cerrado"
	}
	return strings.Join(partes, ", ")
}

// CapacidadEfectiva resuelve el cupo diario con precedencia explícita:
// campo MaxCapacity > settings legados ("capacidad_maxima", "capacidad") > CapacidadPorDefecto.
func CapacidadEfectiva(r *entity.Restaurant) int {
	if r == nil {
		return CapacidadPorDefecto
	}
	if r.MaxCapacity > 0 {
		return r.MaxCapacity
	}
	for _, clave := range []string{"capacidad_maxima", "capacidad"} {
		if v, ok := r.Settings[clave]; ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
				return n
			}
		}
	}
	return CapacidadPorDefecto
}

func dentroDe(min int, v *Ventana) bool {
	if v == nil {
		return false
	}
	abre, err1 := aMinutos(v.Abre)
	cierra, err2 := aMinutos(v.Cierra)
	if err1 != nil || err2 != nil {
		return false
	}
	return min >= abre && min <= cierra
}

// aMinutos convierte "HH:MM" a minutos desde medianoche. Acepta "24:00" como cierre.
func aMinutos(hora string) (int, error) {
	partes := strings.SplitN(strings.TrimSpace(hora), ":", 2)
	if len(partes) != 2 {
		return 0, fmt.Errorf("hora inválida: %q", hora)
	}
	hh, err := strconv.Atoi(partes[0])
	if err != nil {
		return 0, fmt.Errorf("hora inválida: %q", hora)
	}
	mm, err := strconv.Atoi(partes[1])
	if err != nil {
		return 0, fmt.Errorf("hora inválida: %q", hora)
	}
	if hh == 24 && mm == 0 {
		return 24 * 60, nil
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("hora fuera de rango: %q", hora)
	}
	return hh*60 + mm, nil
}

var nombresDia = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
}

func nombreDia(d time.Weekday) string {
	return nombresDia[d]
}
