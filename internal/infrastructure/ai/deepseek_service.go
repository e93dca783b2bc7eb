package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/reservas-api/internal/application/ports"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que DeepSeekService implementa LLMService.
var _ ports.LLMService = (*DeepSeekService)(nil)

const deepseekChatURL = "https://api.deepseek.com/chat/completions"

// DeepSeekService adaptador que implementa LLMService usando la API REST de DeepSeek
// (formato chat/completions compatible con OpenAI). Usa net/http de la librería
// estándar; no requiere SDK.
type DeepSeekService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewDeepSeekService construye el adaptador. model suele ser "deepseek-chat".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewDeepSeekService(apiKey, model string) *DeepSeekService {
	return &DeepSeekService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 15 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo chat/completions ───────────────────────

type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepseekMessage `json:"messages"`
	Temperature float32           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
}

type deepseekResponse struct {
	Choices []struct {
		Message deepseekMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ChatCompletion envía el prompt de sistema más el historial de la conversación
// y devuelve el texto libre del asistente.
func (s *DeepSeekService) ChatCompletion(ctx context.Context, system string, mensajes []entity.Mensaje) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: DEEPSEEK_API_KEY no configurado")
	}

	msgs := make([]deepseekMessage, 0, len(mensajes)+1)
	msgs = append(msgs, deepseekMessage{Role: "system", Content: system})
	for _, m := range mensajes {
		msgs = append(msgs, deepseekMessage{Role: m.Role, Content: m.Content})
	}

	payload := deepseekRequest{
		Model:       s.model,
		Messages:    msgs,
		Temperature: 0.7, // conversación natural; la validación dura vive en el dominio
		MaxTokens:   800,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deepseekChatURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp deepseekResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: DeepSeek error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: DeepSeek HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var dsResp deepseekResponse
	if err := json.Unmarshal(rawBody, &dsResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta DeepSeek: %w", err)
	}

	if len(dsResp.Choices) == 0 {
		return "", fmt.Errorf("AI: DeepSeek devolvió respuesta vacía")
	}
	return dsResp.Choices[0].Message.Content, nil
}
