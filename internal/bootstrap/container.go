package bootstrap

import (
	"log"

	"floria-be/internal/config"
	"floria-be/internal/controller"
	"floria-be/internal/pkg/logger"
	"floria-be/internal/repository/memory"
	"floria-be/internal/service"
	"floria-be/pkg/events"
	"floria-be/pkg/llm/ollama"
	"floria-be/pkg/retrieval"
	"floria-be/pkg/tools"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController
	ToolController controller.IToolController

	// Exposed for graceful shutdown
	Logger logger.ILogger
	Bus    *events.Bus
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	bus := events.NewBus(sysLogger)

	// 3. Model Provider
	llmProvider := ollama.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
		cfg.Ai.LLMTimeout,
	)
	log.Printf("[INFO] Using LLM Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)

	// 4. Retrieval Engine + Tool Registry
	engine := retrieval.NewEngine(retrieval.Config{
		Timeout:      cfg.Retrieval.Timeout,
		MaxPageChars: cfg.Retrieval.MaxPageChars,
		MinPageChars: cfg.Retrieval.MinPageChars,
	}, retrieval.DefaultSources, sysLogger, bus)

	registry := tools.NewRegistry()
	registry.Register(retrieval.NewTool(engine))

	// 5. Repositories
	sessionRepository := memory.NewSessionRepository()

	// 6. Services
	chatService := service.NewChatService(
		sessionRepository,
		llmProvider,
		registry,
		bus,
		sysLogger,
		cfg.Retrieval.MaxSources,
	)

	// 7. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService),
		ToolController: controller.NewToolController(registry),
		Logger:         sysLogger,
		Bus:            bus,
	}
}
