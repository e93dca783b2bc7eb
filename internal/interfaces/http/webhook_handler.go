package http

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/chat"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// WebhookHandler recibe los mensajes entrantes de WhatsApp vía Twilio.
// Twilio hace POST con form-urlencoded (From, Body) y espera TwiML como respuesta.
type WebhookHandler struct {
	uc  *chat.ConversationUseCase
	log *logger.Logger
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(uc *chat.ConversationUseCase, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, log: log}
}

// TwilioWhatsApp godoc
// @Summary      Webhook de WhatsApp entrante (Twilio)
// @Tags         webhooks
// @Accept       x-www-form-urlencoded
// @Produce      xml
// @Param        restaurantId  path      string  true  "ID del restaurante"
// @Param        From          formData  string  true  "whatsapp:+549..."
// @Param        Body          formData  string  true  "Texto del mensaje"
// @Success      200  {string}  string  "TwiML"
// @Router       /api/webhooks/twilio/whatsapp/{restaurantId} [post]
func (h *WebhookHandler) TwilioWhatsApp(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurantId")
	from := strings.TrimPrefix(c.FormValue("From"), "whatsapp:")
	body := c.FormValue("Body")
	if restaurantID == "" || from == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurantId y From son requeridos"})
	}

	in := dto.ChatRequest{
		RestaurantID: restaurantID,
		UserID:       from,
		Mensaje:      body,
	}
	out, err := h.uc.ProcesarMensaje(c.Context(), in, true)
	respuesta := ""
	if err != nil {
		// Twilio reintenta ante 5xx; preferimos responder 200 con un mensaje neutro.
		h.log.Error().Err(err).Str("restaurante_id", restaurantID).Msg("procesar mensaje de WhatsApp")
		respuesta = "Disculpá, tuvimos un problema. ¿Podés intentar de nuevo en unos minutos?"
	} else {
		respuesta = out.Respuesta
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(twiml(respuesta))
}

// twiml arma la respuesta TwiML (<Response><Message>...</Message></Response>).
// etree se encarga del escapado XML del texto libre del asistente.
func twiml(mensaje string) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	resp := doc.CreateElement("Response")
	if mensaje != "" {
		resp.CreateElement("Message").SetText(mensaje)
	}
	out, err := doc.WriteToString()
	if err != nil {
		return `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
	}
	return out
}
