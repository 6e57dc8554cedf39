package bootstrap

import (
	"context"
	"log"

	"dam-butler-be/internal/config"
	"dam-butler-be/internal/controller"
	"dam-butler-be/internal/pkg/logger"
	"dam-butler-be/internal/service"
	"dam-butler-be/pkg/llm/factory"
	"dam-butler-be/pkg/vault/catalog"
	"dam-butler-be/pkg/vault/intent"
	"dam-butler-be/pkg/vault/result"
	"dam-butler-be/pkg/vault/suggest"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AssetController     controller.IAssetController
	MCPController       controller.IMCPController
	AuthController      controller.IAuthController
	AnalyticsController controller.IAnalyticsController
	SystemController    controller.ISystemController
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain Knowledge & Parsing
	vaultCatalog := catalog.New()

	baseURL := ""
	switch cfg.Ai.LLMProvider {
	case "openai":
		baseURL = cfg.Ai.OpenAIBaseURL
	case "ollama":
		baseURL = cfg.Ai.OllamaBaseURL
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.OpenAI,
		cfg.Ai.LLMModel,
		baseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	} else {
		log.Printf("[INFO] No LLM provider configured, pattern matching only")
	}

	resolver := intent.NewResolver(vaultCatalog, llmProvider, nil)
	synthesizer := result.NewSynthesizer(vaultCatalog)
	suggester := suggest.NewEngine()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Analytics.SearchTopic, pubSub)
	analyticsService := service.NewAnalyticsService(pubSub, cfg.Analytics.SearchTopic, sysLogger)
	if err := analyticsService.Consume(context.Background()); err != nil {
		log.Fatalf("[FATAL] Failed to start analytics consumer: %v", err)
	}

	brandfolderService := service.NewBrandfolderService(cfg.Brandfolder, sysLogger)

	assetService := service.NewAssetService(
		resolver,
		synthesizer,
		suggester,
		brandfolderService,
		publisherService,
		sysLogger,
		llmProvider != nil,
	)

	// 5. Controllers
	return &Container{
		AssetController:     controller.NewAssetController(assetService),
		MCPController:       controller.NewMCPController(assetService, cfg.App.Version, brandfolderService.IsConfigured()),
		AuthController:      controller.NewAuthController(brandfolderService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),
		SystemController:    controller.NewSystemController(cfg.App.Version, brandfolderService.IsConfigured(), cfg.Keys.OpenAI != ""),
	}
}
