package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tejaIG/sevak-ai-poc/internal/assistant"
	"github.com/tejaIG/sevak-ai-poc/internal/config"
	"github.com/tejaIG/sevak-ai-poc/internal/email"
	"github.com/tejaIG/sevak-ai-poc/internal/handlers"
	"github.com/tejaIG/sevak-ai-poc/internal/logger"
	"github.com/tejaIG/sevak-ai-poc/internal/middleware"
	"github.com/tejaIG/sevak-ai-poc/internal/routes"
	"github.com/tejaIG/sevak-ai-poc/internal/services"
	"github.com/tejaIG/sevak-ai-poc/internal/storage"
	"github.com/tejaIG/sevak-ai-poc/internal/validator"
	"github.com/tejaIG/sevak-ai-poc/internal/workers"
)

// replyTemperature keeps assistant answers factual without going robotic.
const replyTemperature = 0.5

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	store := openStore(cfg)

	ginRouter := SetupRouter(cfg, store)

	worker := workers.NewMatchingWorker(store, time.Duration(cfg.Matching.SweepSeconds)*time.Second)
	worker.Start(context.Background())
	logger.Info("Matching worker started", "sweep_seconds", cfg.Matching.SweepSeconds)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openStore(cfg *config.Config) storage.Store {
	if cfg.Database.Driver == "memory" {
		logger.Warn("Using in-memory store; data is lost on restart")
		return storage.NewMemoryStore()
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	store, err := storage.OpenGormStore(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")
	return store
}

func SetupRouter(cfg *config.Config, store storage.Store) *gin.Engine {
	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(serviceContainer, store)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, store storage.Store) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPProvider(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = smtp
	} else {
		logger.Warn("SMTP is not configured. Using mock email provider.")
		emailProvider = email.MockProvider{}
	}

	completer := assistant.NewCompleter(assistant.Config{
		APIKey:      cfg.Assistant.APIKey,
		Model:       cfg.Assistant.Model,
		MaxTokens:   cfg.Assistant.MaxTokens,
		Temperature: replyTemperature,
	})
	if cfg.Assistant.APIKey == "" {
		logger.Warn("OpenAI API key is not set. Assistant will serve the fallback reply.")
	}

	intakeService := services.NewIntakeService(store, emailProvider)
	assistantService := services.NewAssistantService(
		completer,
		time.Duration(cfg.Assistant.TimeoutSeconds)*time.Second,
		cfg.Contact.Phone,
	)

	return &services.ServiceContainer{
		IntakeService:    intakeService,
		AssistantService: assistantService,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, store storage.Store) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:         handlers.NewUserHandler(baseHandler, serviceContainer.IntakeService),
		RequirementsHandler: handlers.NewRequirementsHandler(baseHandler, serviceContainer.IntakeService),
		AssistantHandler:    handlers.NewAssistantHandler(baseHandler, serviceContainer.AssistantService),
		HealthHandler:       handlers.NewHealthHandler(store),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
