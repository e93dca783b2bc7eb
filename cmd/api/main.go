package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/reservas-api/internal/application/auth"
	"github.com/jhoicas/reservas-api/internal/application/chat"
	"github.com/jhoicas/reservas-api/internal/application/ports"
	"github.com/jhoicas/reservas-api/internal/application/reservas"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	infraai "github.com/jhoicas/reservas-api/internal/infrastructure/ai"
	infraemail "github.com/jhoicas/reservas-api/internal/infrastructure/email"
	"github.com/jhoicas/reservas-api/internal/infrastructure/memory"
	"github.com/jhoicas/reservas-api/internal/infrastructure/postgres"
	infratwilio "github.com/jhoicas/reservas-api/internal/infrastructure/twilio"
	httpRouter "github.com/jhoicas/reservas-api/internal/interfaces/http"
	"github.com/jhoicas/reservas-api/pkg/config"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	restauranteRepo := postgres.NewRestaurantRepository(pool)
	reservaRepo := postgres.NewReservationRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Canales de notificación: si no están configurados quedan en nil y el
	// registro de reservas solo apaga la bandera correspondiente.
	var mailer ports.EmailSender
	if cfg.SMTP.Host != "" {
		mailer = infraemail.NewSMTPService(cfg.SMTP)
	}
	var whatsapp ports.WhatsAppSender
	if cfg.Twilio.AccountSID != "" {
		whatsapp = infratwilio.NewWhatsAppService(cfg.Twilio)
	}

	capacidadUC := reservas.NewCapacityUseCase(reservaRepo, restauranteRepo, log)
	registrarUC := reservas.NewRegisterUseCase(
		reservaRepo, restauranteRepo, capacidadUC,
		mailer, whatsapp, cfg.App.DefaultCountryCode, log,
	)

	// Proveedor LLM del chatbot según configuración.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "gemini":
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	default:
		llm = infraai.NewDeepSeekService(cfg.AI.DeepSeekAPIKey, cfg.AI.DeepSeekModel)
	}

	store := memory.NewConversationStore()
	conversationUC := chat.NewConversationUseCase(store, llm, registrarUC, restauranteRepo, log)

	restaurantUC := usecase.NewRestaurantUseCase(restauranteRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo, txRunner)
	reservationAdminUC := usecase.NewReservationAdminUseCase(reservaRepo)
	moduleSvc := usecase.NewModuleService(restauranteRepo)
	authUC := auth.NewAuthUseCase(userRepo, restauranteRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el chatbot espera la respuesta del LLM
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reservas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RestaurantUC:  restaurantUC,
		MenuUC:        menuUC,
		ReservationUC: reservationAdminUC,
		Registrar:     registrarUC,
		Capacidad:     capacidadUC,
		Conversation:  conversationUC,
		AuthUC:        authUC,
		ModuleService: moduleSvc,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
