package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

func TestConversationStore_GetSetClear(t *testing.T) {
	store := NewConversationStore()

	_, ok := store.Get("user-1")
	assert.False(t, ok, "usuario nuevo no tiene estado")

	estado := entity.NewConversationState("user-1", "rest-1")
	estado.Datos["nombre"] = "Juan Pérez"
	store.Set(estado)

	got, ok := store.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, "Juan Pérez", got.Datos["nombre"])

	store.Clear("user-1")
	_, ok = store.Get("user-1")
	assert.False(t, ok)
}

func TestConversationStore_UsuariosIndependientes(t *testing.T) {
	store := NewConversationStore()
	store.Set(entity.NewConversationState("user-1", "rest-1"))
	store.Set(entity.NewConversationState("user-2", "rest-1"))

	store.Clear("user-1")

	_, ok := store.Get("user-2")
	assert.True(t, ok, "borrar un usuario no afecta a otro")
}

func TestConversationStore_AccesoConcurrente(t *testing.T) {
	store := NewConversationStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%10))
			store.Set(entity.NewConversationState(id, "rest-1"))
			store.Get(id)
			store.Clear(id)
		}(i)
	}
	wg.Wait()
}
