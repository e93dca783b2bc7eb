package ports

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// ConversationStore puerto del almacén de estado conversacional, indexado por
// identificador de usuario (teléfono o id de sesión). Sustituye al diccionario
// global del sistema original: el dueño del estado es explícito e inyectable,
// de modo que cada despliegue puede respaldarlo en memoria, caché o base de datos.
type ConversationStore interface {
	// Get devuelve el estado del usuario; ok=false si todavía no conversó.
	Get(userID string) (*entity.ConversationState, bool)
	Set(state *entity.ConversationState)
	Clear(userID string)
}
