package reservas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

func TestHorarioPorDefecto_FinDeSemanaExtendido(t *testing.T) {
	h := HorarioPorDefecto()

	assert.True(t, h.HoraPermitida("15:30", time.Saturday))
	assert.False(t, h.HoraPermitida("15:30", time.Wednesday))
	assert.True(t, h.HoraPermitida("24:00", time.Sunday), "domingo la cena cierra a medianoche")
	assert.False(t, h.HoraPermitida("24:00", time.Monday))
}

func TestHorarioDesdeRestaurante_SobrescribeSoloDiasConfigurados(t *testing.T) {
	rest := &entity.Restaurant{
		Hours: []entity.OpeningHours{
			{Weekday: time.Monday, Closed: true},
			{Weekday: time.Friday, LunchOpen: "11:00", LunchClose: "14:00"},
		},
	}
	h := HorarioDesdeRestaurante(rest)

	// Lunes configurado cerrado.
	assert.False(t, h.HoraPermitida("13:00", time.Monday))
	assert.Equal(t, "cerrado", h.FormatearDia(time.Monday))

	// Viernes: solo almuerzo configurado; la cena por defecto desaparece.
	assert.True(t, h.HoraPermitida("11:30", time.Friday))
	assert.False(t, h.HoraPermitida("20:00", time.Friday))

	// Martes sin configurar conserva el horario por defecto.
	assert.True(t, h.HoraPermitida("20:00", time.Tuesday))
}

func TestHorarioDesdeRestaurante_NilUsaDefecto(t *testing.T) {
	h := HorarioDesdeRestaurante(nil)
	assert.True(t, h.HoraPermitida("13:00", time.Tuesday))
}

func TestFormatearDia(t *testing.T) {
	h := HorarioPorDefecto()
	assert.Equal(t, "almuerzo 12:00-15:00, cena 19:00-23:30", h.FormatearDia(time.Tuesday))
	assert.Equal(t, "almuerzo 12:00-16:00, cena 19:00-24:00", h.FormatearDia(time.Saturday))
}

func TestFormatear_IncluyeTodosLosDias(t *testing.T) {
	texto := HorarioPorDefecto().Formatear()
	for _, dia := range []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"} {
		assert.Contains(t, texto, dia)
	}
}

func TestCapacidadEfectiva_Precedencia(t *testing.T) {
	// Campo estructurado manda.
	assert.Equal(t, 80, CapacidadEfectiva(&entity.Restaurant{
		MaxCapacity: 80,
		Settings:    map[string]string{"capacidad_maxima": "50"},
	}))

	// Sin campo estructurado se leen los settings legados.
	assert.Equal(t, 50, CapacidadEfectiva(&entity.Restaurant{
		Settings: map[string]string{"capacidad_maxima": "50"},
	}))
	assert.Equal(t, 40, CapacidadEfectiva(&entity.Restaurant{
		Settings: map[string]string{"capacidad": "40"},
	}))

	// Settings ilegibles caen al valor por defecto.
	assert.Equal(t, CapacidadPorDefecto, CapacidadEfectiva(&entity.Restaurant{
		Settings: map[string]string{"capacidad_maxima": "mucha"},
	}))
	assert.Equal(t, CapacidadPorDefecto, CapacidadEfectiva(&entity.Restaurant{}))
	assert.Equal(t, CapacidadPorDefecto, CapacidadEfectiva(nil))
}
