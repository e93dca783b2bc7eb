package chat

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/ports"
	appreservas "github.com/jhoicas/reservas-api/internal/application/reservas"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	domreservas "github.com/jhoicas/reservas-api/internal/domain/reservas"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// afirmaciones respuestas que disparan el registro de la reserva en el paso de
// confirmación. Se comparan sin acentos ("sí" ≡ "si").
var afirmaciones = map[string]bool{
	"si": true, "yes": true, "confirmar": true, "dale": true,
	"bueno": true, "ok": true, "sipi": true,
}

// negaciones se comparan ya normalizadas ("cancelá" → "cancela").
var negaciones = map[string]bool{
	"no": true, "cancelar": true, "cancela": true, "no gracias": true,
}

// camposRequeridos campos que deben estar recopilados para pasar a confirmación.
var camposRequeridos = []string{"nombre", "fecha", "hora", "personas", "telefono", "email"}

// ConversationUseCase orquesta la conversación de reserva por usuario:
// inicio → recopilación de datos → confirmacion_reserva_intent → (registro | cancelación).
// El avance a confirmación depende de los datos estructurados de intención del
// request, nunca de parsear el texto libre del LLM.
type ConversationUseCase struct {
	store           ports.ConversationStore
	llm             ports.LLMService
	registrar       *appreservas.RegisterUseCase
	restauranteRepo repository.RestaurantRepository
	log             *logger.Logger
}

// NewConversationUseCase construye el orquestador.
func NewConversationUseCase(
	store ports.ConversationStore,
	llm ports.LLMService,
	registrar *appreservas.RegisterUseCase,
	restauranteRepo repository.RestaurantRepository,
	log *logger.Logger,
) *ConversationUseCase {
	return &ConversationUseCase{
		store:           store,
		llm:             llm,
		registrar:       registrar,
		restauranteRepo: restauranteRepo,
		log:             log,
	}
}

// ProcesarMensaje atiende un mensaje entrante (web o WhatsApp) y devuelve la respuesta.
// desdeWhatsApp relaja el requisito de email: se sintetiza uno a partir del teléfono.
func (uc *ConversationUseCase) ProcesarMensaje(ctx context.Context, in dto.ChatRequest, desdeWhatsApp bool) (*dto.ChatResponse, error) {
	estado, ok := uc.store.Get(in.UserID)
	if !ok {
		estado = entity.NewConversationState(in.UserID, in.RestaurantID)
	}
	estado.AgregarMensaje("user", in.Mensaje)

	// Datos estructurados de intención: se incorporan al estado sin pisar con vacíos.
	for k, v := range in.Datos {
		if v != "" && v != "null" {
			estado.Datos[k] = v
		}
	}

	// Paso de confirmación: sí registra, no cancela, cualquier otra cosa vuelve al LLM.
	if estado.Paso == entity.PasoConfirmacion {
		switch {
		case esAfirmacion(in.Mensaje):
			return uc.confirmarReserva(in, estado, desdeWhatsApp)
		case esNegacion(in.Mensaje):
			uc.store.Clear(in.UserID)
			return &dto.ChatResponse{
				Respuesta: "Listo, cancelé el pedido de reserva. Si querés empezar de nuevo, escribime cuando quieras.",
				Paso:      entity.PasoInicio,
			}, nil
		}
	}

	// WhatsApp: si falta el email se sintetiza un placeholder derivado del teléfono.
	if desdeWhatsApp && estado.Datos["email"] == "" && estado.Datos["telefono"] != "" {
		estado.Datos["email"] = domreservas.SoloDigitos(estado.Datos["telefono"]) + "@whatsapp.temporal"
	}

	// Con todos los campos presentes se emite el pedido de confirmación,
	// sin pasar por el LLM.
	if estado.Paso != entity.PasoConfirmacion && datosCompletos(estado.Datos) {
		estado.Paso = entity.PasoConfirmacion
		respuesta := mensajeConfirmacion(estado.Datos)
		estado.AgregarMensaje("assistant", respuesta)
		uc.store.Set(estado)
		return &dto.ChatResponse{Respuesta: respuesta, Paso: estado.Paso}, nil
	}

	if estado.Paso == entity.PasoInicio {
		estado.Paso = entity.PasoRecopilando
	}

	respuesta, err := uc.responderConLLM(ctx, in.RestaurantID, estado)
	if err != nil {
		// Fallo del LLM: respuesta genérica y estado conservado para reintentar.
		uc.log.Warn().Err(err).Str("user_id", in.UserID).Msg("llamada al LLM falló; respuesta fallback")
		uc.store.Set(estado)
		return &dto.ChatResponse{Respuesta: mensajeFallback, Paso: estado.Paso}, nil
	}

	estado.AgregarMensaje("assistant", respuesta)
	uc.store.Set(estado)
	return &dto.ChatResponse{Respuesta: respuesta, Paso: estado.Paso}, nil
}

func (uc *ConversationUseCase) confirmarReserva(in dto.ChatRequest, estado *entity.ConversationState, desdeWhatsApp bool) (*dto.ChatResponse, error) {
	req := dto.CrearReservaRequest{
		RestaurantID: estado.RestaurantID,
		Nombre:       estado.Datos["nombre"],
		Fecha:        estado.Datos["fecha"],
		Hora:         estado.Datos["hora"],
		Personas:     json.Number(estado.Datos["personas"]),
		Telefono:     estado.Datos["telefono"],
		Email:        estado.Datos["email"],
		Comentarios:  estado.Datos["comentarios"],
	}

	var resultado *dto.ResultadoReserva
	if desdeWhatsApp {
		resultado = uc.registrar.RegistrarDesdeWhatsApp(req)
	} else {
		resultado = uc.registrar.Registrar(req)
	}

	// Confirmada o rechazada, la conversación vuelve a cero.
	uc.store.Clear(in.UserID)

	respuesta := resultado.Message
	if respuesta == "" {
		respuesta = resultado.Error
	}
	return &dto.ChatResponse{Respuesta: respuesta, Paso: entity.PasoInicio}, nil
}

func (uc *ConversationUseCase) responderConLLM(ctx context.Context, restaurantID string, estado *entity.ConversationState) (string, error) {
	restaurante, err := uc.restauranteRepo.GetByID(restaurantID)
	if err != nil {
		restaurante = nil // el prompt degrada a identidad genérica
	}
	horario := domreservas.HorarioDesdeRestaurante(restaurante)

	// Timeout propio: la latencia del LLM no debe colgar el request.
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	system := promptSistema(restaurante, horario, time.Now())
	return uc.llm.ChatCompletion(ctx, system, estado.Historial)
}

func datosCompletos(datos map[string]string) bool {
	for _, campo := range camposRequeridos {
		if datos[campo] == "" {
			return false
		}
	}
	return true
}

func esAfirmacion(mensaje string) bool {
	return afirmaciones[normalizar(mensaje)]
}

func esNegacion(mensaje string) bool {
	return negaciones[normalizar(mensaje)]
}

// normalizar pasa a minúsculas, quita signos de puntuación al borde y elimina
// acentos (descomposición NFD + remoción de marcas diacríticas), para que
// "¡Sí!" y "si" se comparen iguales.
func normalizar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	limpio, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return limpio
}
