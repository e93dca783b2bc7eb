package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgregarMensaje_VentanaDeslizante(t *testing.T) {
	s := NewConversationState("user-1", "rest-1")
	for i := 1; i <= MaxHistorial+1; i++ {
		s.AgregarMensaje("user", fmt.Sprintf("mensaje %d", i))
	}

	require.Len(t, s.Historial, MaxHistorial, "al superar el máximo se descarta el más antiguo")
	assert.Equal(t, "mensaje 2", s.Historial[0].Content)
	assert.Equal(t, fmt.Sprintf("mensaje %d", MaxHistorial+1), s.Historial[len(s.Historial)-1].Content)
}

func TestAgregarMensaje_NoRecortaBajoElMaximo(t *testing.T) {
	s := NewConversationState("user-1", "rest-1")
	s.AgregarMensaje("user", "hola")
	s.AgregarMensaje("assistant", "¡Hola! ¿Tu nombre y apellido?")

	require.Len(t, s.Historial, 2)
	assert.Equal(t, "user", s.Historial[0].Role)
	assert.Equal(t, "assistant", s.Historial[1].Role)
}

func TestReiniciar(t *testing.T) {
	s := NewConversationState("user-1", "rest-1")
	s.AgregarMensaje("user", "hola")
	s.Datos["nombre"] = "Juan Pérez"
	s.Paso = PasoConfirmacion

	s.Reiniciar()

	assert.Empty(t, s.Historial)
	assert.Empty(t, s.Datos)
	assert.Equal(t, PasoInicio, s.Paso)
	assert.Equal(t, "user-1", s.UserID, "el identificador se conserva")
}
