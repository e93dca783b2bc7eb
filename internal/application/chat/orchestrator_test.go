package chat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/application/chat"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/reservas"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/infrastructure/memory"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeLLM struct {
	respuesta string
	err       error
	llamadas  int
}

func (f *fakeLLM) ChatCompletion(ctx context.Context, system string, mensajes []entity.Mensaje) (string, error) {
	f.llamadas++
	if f.err != nil {
		return "", f.err
	}
	return f.respuesta, nil
}

type fakeReservaRepo struct {
	creadas []*entity.Reservation
}

func (f *fakeReservaRepo) Create(r *entity.Reservation) error { f.creadas = append(f.creadas, r); return nil }
func (f *fakeReservaRepo) GetByID(id string) (*entity.Reservation, error) { return nil, nil }
func (f *fakeReservaRepo) ListByRestaurantAndDate(restaurantID, fecha string) ([]*entity.Reservation, error) {
	return nil, nil
}
func (f *fakeReservaRepo) SumConfirmedByDate(restaurantID, fecha string) (int, error) { return 0, nil }
func (f *fakeReservaRepo) UpdateStatus(id string, status entity.ReservationStatus) error { return nil }

type fakeRestauranteRepo struct {
	rest *entity.Restaurant
}

func (f *fakeRestauranteRepo) Create(r *entity.Restaurant) error          { return nil }
func (f *fakeRestauranteRepo) GetByID(id string) (*entity.Restaurant, error) { return f.rest, nil }
func (f *fakeRestauranteRepo) List(limit, offset int) ([]*entity.Restaurant, error) {
	return nil, nil
}
func (f *fakeRestauranteRepo) Update(r *entity.Restaurant) error { return nil }
func (f *fakeRestauranteRepo) UpdateHours(id string, hours []entity.OpeningHours) error {
	return nil
}
func (f *fakeRestauranteRepo) HasActiveModule(ctx context.Context, restaurantID, moduleName string) (bool, error) {
	return true, nil
}

type entorno struct {
	uc          *chat.ConversationUseCase
	store       *memory.ConversationStore
	llm         *fakeLLM
	reservaRepo *fakeReservaRepo
}

func nuevoEntorno(llm *fakeLLM) *entorno {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	reservaRepo := &fakeReservaRepo{}
	restRepo := &fakeRestauranteRepo{rest: &entity.Restaurant{ID: "r1", Name: "La Parrilla", MaxCapacity: 30}}
	capacidad := reservas.NewCapacityUseCase(reservaRepo, restRepo, log)
	registrar := reservas.NewRegisterUseCase(reservaRepo, restRepo, capacidad, nil, nil, "+54", log)
	store := memory.NewConversationStore()
	return &entorno{
		uc:          chat.NewConversationUseCase(store, llm, registrar, restRepo, log),
		store:       store,
		llm:         llm,
		reservaRepo: reservaRepo,
	}
}

func datosCompletos() map[string]string {
	return map[string]string{
		"nombre":   "Juan Pérez",
		"fecha":    time.Now().AddDate(0, 0, 2).Format("02/01/2006"),
		"hora":     "21:00",
		"personas": "4",
		"telefono": "1123456789",
		"email":    "juan@example.com",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestChat_MensajeInicialVaAlLLM(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{respuesta: "¡Hola! ¿Me decís tu nombre y apellido?"})

	out, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "hola, quiero reservar",
	}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, env.llm.llamadas)
	assert.Equal(t, "¡Hola! ¿Me decís tu nombre y apellido?", out.Respuesta)
	assert.Equal(t, entity.PasoRecopilando, out.Paso)

	estado, ok := env.store.Get("u1")
	require.True(t, ok)
	assert.Len(t, estado.Historial, 2, "mensaje del usuario + respuesta del asistente")
}

func TestChat_DatosCompletosPasanAConfirmacionSinLLM(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{respuesta: "no debería usarse"})

	out, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "listo",
		Datos: datosCompletos(),
	}, false)

	require.NoError(t, err)
	assert.Equal(t, 0, env.llm.llamadas, "la transición a confirmación no consulta al LLM")
	assert.Equal(t, entity.PasoConfirmacion, out.Paso)
	assert.Contains(t, out.Respuesta, "¿Confirmás la reserva?")
	assert.Contains(t, out.Respuesta, "Juan Pérez")
}

func TestChat_AfirmacionRegistraYLimpia(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{})

	_, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "listo", Datos: datosCompletos(),
	}, false)
	require.NoError(t, err)

	// "¡Sí!" se normaliza (acentos y puntuación) y dispara el registro.
	out, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "¡Sí!",
	}, false)

	require.NoError(t, err)
	require.Len(t, env.reservaRepo.creadas, 1)
	assert.Contains(t, out.Respuesta, "Reserva registrada")
	assert.Equal(t, entity.PasoInicio, out.Paso)

	_, ok := env.store.Get("u1")
	assert.False(t, ok, "la conversación vuelve a cero tras confirmar")
}

func TestChat_NegacionCancelaYLimpia(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{})

	_, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "listo", Datos: datosCompletos(),
	}, false)
	require.NoError(t, err)

	out, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "no",
	}, false)

	require.NoError(t, err)
	assert.Empty(t, env.reservaRepo.creadas)
	assert.Contains(t, out.Respuesta, "cancelé")

	_, ok := env.store.Get("u1")
	assert.False(t, ok)
}

func TestChat_RespuestaAmbiguaEnConfirmacionVuelveAlLLM(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{respuesta: "Decime sí o no, porfa."})

	_, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "listo", Datos: datosCompletos(),
	}, false)
	require.NoError(t, err)

	out, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "¿puedo llevar al perro?",
	}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, env.llm.llamadas)
	assert.Empty(t, env.reservaRepo.creadas)
	assert.Equal(t, "Decime sí o no, porfa.", out.Respuesta)
}

func TestChat_FalloDelLLMConservaElEstado(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{err: errors.New("timeout del proveedor")})

	out, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "hola",
		Datos: map[string]string{"nombre": "Juan Pérez"},
	}, false)

	require.NoError(t, err, "el fallo del LLM no burbujea como error HTTP")
	assert.Contains(t, out.Respuesta, "problema técnico")

	estado, ok := env.store.Get("u1")
	require.True(t, ok, "el estado sobrevive para reintentar")
	assert.Equal(t, "Juan Pérez", estado.Datos["nombre"], "los datos recopilados no se pierden")
}

func TestChat_WhatsAppSintetizaEmail(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{})

	datos := datosCompletos()
	delete(datos, "email")
	out, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "+5491123456789", Mensaje: "listo", Datos: datos,
	}, true)

	require.NoError(t, err)
	assert.Equal(t, entity.PasoConfirmacion, out.Paso)
	assert.NotContains(t, out.Respuesta, "@whatsapp.temporal", "el placeholder no se muestra al cliente")

	estado, ok := env.store.Get("+5491123456789")
	require.True(t, ok)
	assert.Equal(t, "1123456789@whatsapp.temporal", estado.Datos["email"])
}

func TestChat_DatosVaciosNoPisanLosExistentes(t *testing.T) {
	env := nuevoEntorno(&fakeLLM{respuesta: "ok"})

	_, err := env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "me llamo Juan Pérez",
		Datos: map[string]string{"nombre": "Juan Pérez"},
	}, false)
	require.NoError(t, err)

	_, err = env.uc.ProcesarMensaje(context.Background(), dto.ChatRequest{
		RestaurantID: "r1", UserID: "u1", Mensaje: "el 10 a la noche",
		Datos: map[string]string{"nombre": "", "fecha": "null"},
	}, false)
	require.NoError(t, err)

	estado, ok := env.store.Get("u1")
	require.True(t, ok)
	assert.Equal(t, "Juan Pérez", estado.Datos["nombre"])
	assert.Empty(t, estado.Datos["fecha"], `"null" del extractor no cuenta como dato`)
}
