package twilio

import (
	"fmt"
	"strings"

	"github.com/jhoicas/reservas-api/internal/application/ports"
	"github.com/jhoicas/reservas-api/pkg/config"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Verificar en tiempo de compilación que WhatsAppService implementa WhatsAppSender.
var _ ports.WhatsAppSender = (*WhatsAppService)(nil)

// WhatsAppService adaptador de WhatsApp saliente sobre la API de Twilio.
// Los números van en E.164; Twilio exige el prefijo "whatsapp:".
type WhatsAppService struct {
	client *twilio.RestClient
	from   string
}

// NewWhatsAppService construye el adaptador con las credenciales de Twilio.
func NewWhatsAppService(cfg config.TwilioConfig) *WhatsAppService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &WhatsAppService{client: client, from: cfg.FromNumber}
}

// SendWhatsApp envía un mensaje de texto al número destino (E.164).
func (s *WhatsAppService) SendWhatsApp(to, body string) error {
	if s.from == "" {
		return fmt.Errorf("whatsapp: TWILIO_WHATSAPP_FROM no configurado")
	}
	params := &openapi.CreateMessageParams{}
	params.SetFrom(conPrefijo(s.from))
	params.SetTo(conPrefijo(to))
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("whatsapp: enviar mensaje: %w", err)
	}
	return nil
}

func conPrefijo(numero string) string {
	if strings.HasPrefix(numero, "whatsapp:") {
		return numero
	}
	return "whatsapp:" + numero
}
