package ports

import (
	"context"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// LLMService define el puerto de salida hacia el modelo de lenguaje del chatbot.
// Cualquier adaptador (DeepSeek, Gemini, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo
// conoce este contrato, no la implementación concreta.
type LLMService interface {
	// ChatCompletion envía el prompt de sistema más el historial recortado y
	// devuelve el texto libre del asistente. El contexto debe llevar un timeout
	// para evitar bloqueos en llamadas externas.
	ChatCompletion(ctx context.Context, system string, mensajes []entity.Mensaje) (string, error)
}
