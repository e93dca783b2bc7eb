package reservas_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/ports"
	"github.com/jhoicas/reservas-api/internal/application/reservas"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

type fakeMailer struct {
	enviados int
	err      error
}

func (f *fakeMailer) SendReservationConfirmation(r *entity.Reservation, rest *entity.Restaurant) error {
	if f.err != nil {
		return f.err
	}
	f.enviados++
	return nil
}

type fakeWhatsApp struct {
	destinos []string
	err      error
}

func (f *fakeWhatsApp) SendWhatsApp(to, body string) error {
	if f.err != nil {
		return f.err
	}
	f.destinos = append(f.destinos, to)
	return nil
}

func registrarDePrueba(reservaRepo *fakeReservaRepo, restRepo *fakeRestauranteRepo, mailer *fakeMailer, wa *fakeWhatsApp) *reservas.RegisterUseCase {
	capacidad := reservas.NewCapacityUseCase(reservaRepo, restRepo, testLogger())
	// Un *fakeMailer nil dentro de la interfaz no es una interfaz nil; se pasa
	// nil sin tipo para representar un canal no configurado.
	var mailerPort ports.EmailSender
	if mailer != nil {
		mailerPort = mailer
	}
	var waPort ports.WhatsAppSender
	if wa != nil {
		waPort = wa
	}
	return reservas.NewRegisterUseCase(reservaRepo, restRepo, capacidad, mailerPort, waPort, "+54", testLogger())
}

func requestValida(t *testing.T) dto.CrearReservaRequest {
	t.Helper()
	return dto.CrearReservaRequest{
		RestaurantID: "r1",
		Nombre:       "Juan Pérez",
		Fecha:        fechaFutura(t),
		Hora:         "21:00",
		Personas:     json.Number("4"),
		Telefono:     "1123456789",
		Email:        "juan@example.com",
	}
}

func TestRegistrar_Exitoso(t *testing.T) {
	reservaRepo := &fakeReservaRepo{}
	restRepo := &fakeRestauranteRepo{rest: &entity.Restaurant{ID: "r1", Name: "La Parrilla", MaxCapacity: 30}}
	mailer := &fakeMailer{}
	wa := &fakeWhatsApp{}
	uc := registrarDePrueba(reservaRepo, restRepo, mailer, wa)

	out := uc.Registrar(requestValida(t))

	require.True(t, out.Success, out.Error)
	assert.Equal(t, 200, out.StatusCode)
	assert.NotEmpty(t, out.ReservationID)
	assert.True(t, out.EmailSent)
	assert.True(t, out.WhatsAppSent)
	assert.Contains(t, out.Message, "Reserva registrada")

	require.Len(t, reservaRepo.creadas, 1)
	guardada := reservaRepo.creadas[0]
	assert.Equal(t, entity.StatusPendiente, guardada.Status)
	assert.Equal(t, entity.OrigenWeb, guardada.Origen)
	assert.Equal(t, 4, guardada.Personas)

	// El destino de WhatsApp se normaliza a E.164 con el prefijo por defecto.
	require.Len(t, wa.destinos, 1)
	assert.Equal(t, "+541123456789", wa.destinos[0])
}

func TestRegistrar_CamposFaltantesEs400(t *testing.T) {
	uc := registrarDePrueba(&fakeReservaRepo{}, &fakeRestauranteRepo{}, nil, nil)

	out := uc.Registrar(dto.CrearReservaRequest{RestaurantID: "r1", Nombre: "Juan Pérez"})

	assert.False(t, out.Success)
	assert.Equal(t, 400, out.StatusCode)
	assert.Contains(t, out.Error, "Faltan campos obligatorios")
	assert.Contains(t, out.Error, "fecha")
	assert.Contains(t, out.Error, "email")
}

func TestRegistrar_PersonasNoNumericasEs400(t *testing.T) {
	uc := registrarDePrueba(&fakeReservaRepo{}, &fakeRestauranteRepo{}, nil, nil)

	in := requestValida(t)
	in.Personas = json.Number("cuatro")
	out := uc.Registrar(in)

	assert.False(t, out.Success)
	assert.Equal(t, 400, out.StatusCode)
}

func TestRegistrar_RechazoDeNegocioEs200(t *testing.T) {
	uc := registrarDePrueba(&fakeReservaRepo{}, &fakeRestauranteRepo{}, nil, nil)

	in := requestValida(t)
	in.Fecha = "01/01/2020"
	out := uc.Registrar(in)

	assert.False(t, out.Success)
	assert.Equal(t, 200, out.StatusCode, "los rechazos de negocio no son errores HTTP")
	assert.Contains(t, out.Message, "ya pasó")
	assert.Empty(t, out.ReservationID)
}

func TestRegistrar_SinCupoEs200(t *testing.T) {
	reservaRepo := &fakeReservaRepo{suma: 30}
	restRepo := &fakeRestauranteRepo{rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30}}
	uc := registrarDePrueba(reservaRepo, restRepo, nil, nil)

	out := uc.Registrar(requestValida(t))

	assert.False(t, out.Success)
	assert.Equal(t, 200, out.StatusCode)
	assert.Contains(t, out.Message, "cupo")
	assert.Empty(t, reservaRepo.creadas, "no se persiste nada sin cupo")
}

func TestRegistrar_FalloDePersistenciaEs500(t *testing.T) {
	reservaRepo := &fakeReservaRepo{errCreate: errors.New("db caída")}
	restRepo := &fakeRestauranteRepo{rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30}}
	uc := registrarDePrueba(reservaRepo, restRepo, nil, nil)

	out := uc.Registrar(requestValida(t))

	assert.False(t, out.Success)
	assert.Equal(t, 500, out.StatusCode)
	assert.Contains(t, out.Error, "No pudimos registrar la reserva")
}

func TestRegistrar_NotificacionCaidaNoAfectaElExito(t *testing.T) {
	reservaRepo := &fakeReservaRepo{}
	restRepo := &fakeRestauranteRepo{rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30}}
	mailer := &fakeMailer{err: errors.New("smtp rechazado")}
	wa := &fakeWhatsApp{}
	uc := registrarDePrueba(reservaRepo, restRepo, mailer, wa)

	out := uc.Registrar(requestValida(t))

	require.True(t, out.Success, "el fallo de email no voltea la reserva")
	assert.False(t, out.EmailSent)
	assert.True(t, out.WhatsAppSent)
	assert.Len(t, reservaRepo.creadas, 1)
}

func TestRegistrar_SinCanalesConfigurados(t *testing.T) {
	reservaRepo := &fakeReservaRepo{}
	restRepo := &fakeRestauranteRepo{rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30}}
	uc := registrarDePrueba(reservaRepo, restRepo, nil, nil)

	out := uc.Registrar(requestValida(t))

	require.True(t, out.Success)
	assert.False(t, out.EmailSent)
	assert.False(t, out.WhatsAppSent)
	assert.Contains(t, out.Message, "guardá este número de reserva")
}

func TestRegistrarDesdeWhatsApp_EmailSintetico(t *testing.T) {
	reservaRepo := &fakeReservaRepo{}
	restRepo := &fakeRestauranteRepo{rest: &entity.Restaurant{ID: "r1", MaxCapacity: 30}}
	uc := registrarDePrueba(reservaRepo, restRepo, nil, nil)

	in := requestValida(t)
	in.Email = ""
	out := uc.RegistrarDesdeWhatsApp(in)

	require.True(t, out.Success, out.Error)
	require.Len(t, reservaRepo.creadas, 1)
	guardada := reservaRepo.creadas[0]
	assert.Equal(t, "1123456789@whatsapp.temporal", guardada.Email)
	assert.Equal(t, entity.OrigenWhatsApp, guardada.Origen)
}

func TestNormalizarE164(t *testing.T) {
	assert.Equal(t, "+541123456789", reservas.NormalizarE164("11 2345-6789", "+54"))
	assert.Equal(t, "+5491123456789", reservas.NormalizarE164("+54 9 11 2345-6789", "+54"))
	assert.Equal(t, "", reservas.NormalizarE164("", "+54"))
}
