package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/reservas"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	apphttp "github.com/jhoicas/reservas-api/internal/interfaces/http"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de persistencia para montar el handler completo
// ──────────────────────────────────────────────────────────────────────────────

type fakeReservaRepo struct {
	creadas []*entity.Reservation
	suma    int
}

func (f *fakeReservaRepo) Create(r *entity.Reservation) error { f.creadas = append(f.creadas, r); return nil }
func (f *fakeReservaRepo) GetByID(id string) (*entity.Reservation, error) { return nil, nil }
func (f *fakeReservaRepo) ListByRestaurantAndDate(restaurantID, fecha string) ([]*entity.Reservation, error) {
	return f.creadas, nil
}
func (f *fakeReservaRepo) SumConfirmedByDate(restaurantID, fecha string) (int, error) {
	return f.suma, nil
}
func (f *fakeReservaRepo) UpdateStatus(id string, status entity.ReservationStatus) error { return nil }

type fakeRestauranteRepo struct {
	rest *entity.Restaurant
}

func (f *fakeRestauranteRepo) Create(r *entity.Restaurant) error             { return nil }
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

func buildReservasApp(reservaRepo *fakeReservaRepo, restRepo *fakeRestauranteRepo) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	capacidad := reservas.NewCapacityUseCase(reservaRepo, restRepo, log)
	registrar := reservas.NewRegisterUseCase(reservaRepo, restRepo, capacidad, nil, nil, "+54", log)
	admin := usecase.NewReservationAdminUseCase(reservaRepo)
	handler := apphttp.NewReservationHandler(registrar, capacidad, admin)

	app := fiber.New()
	app.Post("/api/reservas", handler.Create)
	app.Post("/api/reservas/validar_disponibilidad", handler.ValidarDisponibilidad)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func fechaDentroDeVentana() string {
	return time.Now().AddDate(0, 0, 2).Format("02/01/2006")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/reservas
// ──────────────────────────────────────────────────────────────────────────────

func TestPostReservas_Exitoso(t *testing.T) {
	reservaRepo := &fakeReservaRepo{}
	app := buildReservasApp(reservaRepo, &fakeRestauranteRepo{
		rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30},
	})

	body := `{
		"restaurante_id": "r1",
		"nombre": "Juan Pérez",
		"fecha": "` + fechaDentroDeVentana() + `",
		"hora": "21:00",
		"personas": "4",
		"telefono": "1123456789",
		"email": "juan@example.com"
	}`
	resp := postJSON(t, app, "/api/reservas", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ResultadoReserva
	decodeJSON(t, resp, &out)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.ReservationID)
	require.Len(t, reservaRepo.creadas, 1)
}

func TestPostReservas_CamposFaltantesEs400(t *testing.T) {
	app := buildReservasApp(&fakeReservaRepo{}, &fakeRestauranteRepo{})

	resp := postJSON(t, app, "/api/reservas", `{"restaurante_id": "r1", "nombre": "Juan Pérez"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ResultadoReserva
	decodeJSON(t, resp, &out)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "Faltan campos obligatorios")
}

func TestPostReservas_RechazoDeNegocioEs200(t *testing.T) {
	app := buildReservasApp(&fakeReservaRepo{}, &fakeRestauranteRepo{})

	body := `{
		"restaurante_id": "r1",
		"nombre": "Juan Pérez",
		"fecha": "01/01/2020",
		"hora": "21:00",
		"personas": 4,
		"telefono": "1123456789",
		"email": "juan@example.com"
	}`
	resp := postJSON(t, app, "/api/reservas", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "los rechazos de negocio no son errores HTTP")

	var out dto.ResultadoReserva
	decodeJSON(t, resp, &out)
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "ya pasó")
}

func TestPostReservas_PersonasComoNumeroOTexto(t *testing.T) {
	reservaRepo := &fakeReservaRepo{}
	app := buildReservasApp(reservaRepo, &fakeRestauranteRepo{
		rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30},
	})

	// "personas" como número JSON, no como string.
	body := `{
		"restaurante_id": "r1",
		"nombre": "Ana López",
		"fecha": "` + fechaDentroDeVentana() + `",
		"hora": "13:00",
		"personas": 2,
		"telefono": "1198765432",
		"email": "ana@example.com"
	}`
	resp := postJSON(t, app, "/api/reservas", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ResultadoReserva
	decodeJSON(t, resp, &out)
	assert.True(t, out.Success, out.Error)
	require.Len(t, reservaRepo.creadas, 1)
	assert.Equal(t, 2, reservaRepo.creadas[0].Personas)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/reservas/validar_disponibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarDisponibilidad_ConCupo(t *testing.T) {
	app := buildReservasApp(&fakeReservaRepo{suma: 10}, &fakeRestauranteRepo{
		rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30},
	})

	body := `{"restaurante_id": "r1", "fecha": "` + fechaDentroDeVentana() + `", "hora": "21:00", "personas": 4}`
	resp := postJSON(t, app, "/api/reservas/validar_disponibilidad", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DisponibilidadResponse
	decodeJSON(t, resp, &out)
	assert.True(t, out.Disponible)
	assert.Equal(t, 20, out.CapacidadRestante)
}

func TestValidarDisponibilidad_SinCupoEs200(t *testing.T) {
	app := buildReservasApp(&fakeReservaRepo{suma: 30}, &fakeRestauranteRepo{
		rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30},
	})

	body := `{"restaurante_id": "r1", "fecha": "` + fechaDentroDeVentana() + `", "hora": "21:00", "personas": 2}`
	resp := postJSON(t, app, "/api/reservas/validar_disponibilidad", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DisponibilidadResponse
	decodeJSON(t, resp, &out)
	assert.False(t, out.Disponible)
	assert.Contains(t, out.Mensaje, "cupo")
}

func TestValidarDisponibilidad_FechaRotaEs400(t *testing.T) {
	app := buildReservasApp(&fakeReservaRepo{}, &fakeRestauranteRepo{})

	body := `{"restaurante_id": "r1", "fecha": "mañana", "hora": "21:00", "personas": 4}`
	resp := postJSON(t, app, "/api/reservas/validar_disponibilidad", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
