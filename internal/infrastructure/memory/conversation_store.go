package memory

import (
	"sync"

	"github.com/jhoicas/reservas-api/internal/application/ports"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que ConversationStore implementa el puerto.
var _ ports.ConversationStore = (*ConversationStore)(nil)

// ConversationStore almacén en memoria del estado conversacional, protegido con RWMutex.
// El estado se pierde al reiniciar el proceso; el chatbot arranca la conversación de cero,
// que es un comportamiento aceptable para este canal.
//
// Get devuelve el puntero compartido: dos requests simultáneos del MISMO usuario pueden
// pisarse el estado entre sí. Se acepta porque un humano no escribe dos mensajes a la vez.
type ConversationStore struct {
	mu     sync.RWMutex
	states map[string]*entity.ConversationState
}

// NewConversationStore construye el almacén vacío.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{states: make(map[string]*entity.ConversationState)}
}

// Get devuelve el estado del usuario; ok=false si todavía no conversó.
func (s *ConversationStore) Get(userID string) (*entity.ConversationState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[userID]
	return st, ok
}

// Set guarda o reemplaza el estado del usuario.
func (s *ConversationStore) Set(state *entity.ConversationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.UserID] = state
}

// Clear elimina el estado del usuario (fin o cancelación de la conversación).
func (s *ConversationStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
