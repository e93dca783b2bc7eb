package dto

// ChatRequest mensaje entrante del canal web.
// Datos transporta campos de la reserva extraídos de forma estructurada por el
// cliente (intención directa); la transición a confirmación nunca depende de
// parsear el texto libre del LLM.
type ChatRequest struct {
	RestaurantID string            `json:"restaurante_id"`
	UserID       string            `json:"user_id"` // teléfono o id de sesión
	Mensaje      string            `json:"mensaje"`
	Datos        map[string]string `json:"datos,omitempty"`
}

// ChatResponse respuesta del orquestador conversacional.
type ChatResponse struct {
	Respuesta string `json:"respuesta"`
	Paso      string `json:"paso"`
}
