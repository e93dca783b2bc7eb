package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/auth"
	"github.com/jhoicas/reservas-api/internal/application/chat"
	"github.com/jhoicas/reservas-api/internal/application/reservas"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RestaurantUC  *usecase.RestaurantUseCase
	MenuUC        *usecase.MenuUseCase
	ReservationUC *usecase.ReservationAdminUseCase
	Registrar     *reservas.RegisterUseCase
	Capacidad     *reservas.CapacityUseCase
	Conversation  *chat.ConversationUseCase
	AuthUC        *auth.AuthUseCase
	ModuleService *usecase.ModuleService
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Restaurantes (lectura pública; el alta queda pública para el onboarding)
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	restaurantes := api.Group("/restaurantes")
	restaurantes.Post("/", restaurantHandler.Create)
	restaurantes.Get("/", restaurantHandler.List)
	restaurantes.Get("/:id", restaurantHandler.GetByID)

	// Menú digital (lectura pública)
	menuHandler := NewMenuHandler(deps.MenuUC)
	restaurantes.Get("/:restaurantId/menu", menuHandler.List)

	// Reservas (público: web y widgets)
	reservationHandler := NewReservationHandler(deps.Registrar, deps.Capacidad, deps.ReservationUC)
	reservasGroup := api.Group("/reservas")
	reservasGroup.Post("/", reservationHandler.Create)
	reservasGroup.Post("/validar_disponibilidad", reservationHandler.ValidarDisponibilidad)

	// Chatbot web (público)
	chatHandler := NewChatHandler(deps.Conversation)
	api.Post("/chat", chatHandler.Message)

	// Webhook de WhatsApp entrante (Twilio firma sus requests; acá va sin auth JWT)
	webhookHandler := NewWebhookHandler(deps.Conversation, deps.Log)
	api.Post("/webhooks/twilio/whatsapp/:restaurantId", webhookHandler.TwilioWhatsApp)

	// Panel de administración (requiere Bearer Token)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret))

	adminReservas := admin.Group("/reservas", RequireModule(entity.ModuleReservasOnline, deps.ModuleService))
	adminReservas.Get("/", reservationHandler.List)
	adminReservas.Patch("/:id/estado", reservationHandler.UpdateStatus)

	adminRestaurantes := admin.Group("/restaurantes")
	adminRestaurantes.Put("/horarios", restaurantHandler.UpdateHours)

	adminMenu := admin.Group("/menu", RequireModule(entity.ModuleMenuDigital, deps.ModuleService))
	adminMenu.Put("/", menuHandler.Replace)
}
