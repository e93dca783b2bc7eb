package entity

import "time"

// MaxHistorial cantidad máxima de mensajes retenidos por conversación.
// Al superarla se descarta el más antiguo (ventana deslizante).
const MaxHistorial = 10

// Pasos del flujo conversacional de reserva.
const (
	PasoInicio       = "inicio"
	PasoRecopilando  = "recopilando_datos"
	PasoConfirmacion = "confirmacion_reserva_intent"
)

// Mensaje una entrada del historial de conversación.
type Mensaje struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// ConversationState estado conversacional de un usuario (web o WhatsApp),
// identificado por teléfono o id de sesión. Propiedad exclusiva del
// ConversationStore; nunca se comparte entre usuarios.
type ConversationState struct {
	UserID       string
	RestaurantID string
	Historial    []Mensaje
	Datos        map[string]string // campos de la reserva recopilados parcialmente
	Paso         string            // ver constantes Paso*
	UpdatedAt    time.Time
}

// NewConversationState crea el estado inicial de un usuario (creación perezosa).
func NewConversationState(userID, restaurantID string) *ConversationState {
	return &ConversationState{
		UserID:       userID,
		RestaurantID: restaurantID,
		Historial:    []Mensaje{},
		Datos:        make(map[string]string),
		Paso:         PasoInicio,
		UpdatedAt:    time.Now(),
	}
}

// AgregarMensaje añade un mensaje al historial respetando la ventana de MaxHistorial.
func (s *ConversationState) AgregarMensaje(role, content string) {
	s.Historial = append(s.Historial, Mensaje{Role: role, Content: content})
	if len(s.Historial) > MaxHistorial {
		s.Historial = s.Historial[len(s.Historial)-MaxHistorial:]
	}
	s.UpdatedAt = time.Now()
}

// Reiniciar vuelve al estado inicial conservando el identificador del usuario.
func (s *ConversationState) Reiniciar() {
	s.Historial = []Mensaje{}
	s.Datos = make(map[string]string)
	s.Paso = PasoInicio
	s.UpdatedAt = time.Now()
}
