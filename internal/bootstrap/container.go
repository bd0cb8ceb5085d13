package bootstrap

import (
	"log"
	"os"
	"path/filepath"

	"ai-chartgen-be/internal/config"
	"ai-chartgen-be/internal/controller"
	"ai-chartgen-be/internal/pkg/logger"
	"ai-chartgen-be/internal/repository/memory"
	"ai-chartgen-be/internal/service"
	"ai-chartgen-be/pkg/generation"
	"ai-chartgen-be/pkg/invoker"
	"ai-chartgen-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	GenerationController controller.IGenerationController
	ChartController      controller.IChartController
	SessionController    controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	sweeper   *memory.Sweeper
	sysLogger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pipeLogger := initPipelineLogger()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFace,
		cfg.Ai.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. In-Memory Stores
	sessionRepo := memory.NewSessionRepository(cfg.Store.SessionTTL)
	chartRepo := memory.NewChartRepository(cfg.Store.ChartTTL)
	jobRepo := memory.NewJobRepository(cfg.Store.JobTTL)

	sweeper := memory.NewSweeper(sessionRepo, chartRepo, cfg.Store.SweepInterval, sysLogger)
	sweeper.Start()

	// 5. Pipeline
	inv := invoker.New(llmProvider, cfg.Pipeline.BackoffBase, cfg.Pipeline.BackoffCap, pipeLogger)
	pipeline := generation.NewPipeline(
		inv,
		jobRepo,
		sessionRepo,
		chartRepo,
		cfg.Pipeline.PrimaryAttempts,
		cfg.Pipeline.AuxAttempts,
		pipeLogger,
	)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Pipeline.Topic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Pipeline.Topic, pipeline, sysLogger)

	generationService := service.NewGenerationService(jobRepo, publisherService, sysLogger)
	chartService := service.NewChartService(chartRepo, sysLogger)
	sessionService := service.NewSessionService(sessionRepo, inv, cfg.Pipeline.AuxAttempts, sysLogger)

	return &Container{
		GenerationController: controller.NewGenerationController(generationService),
		ChartController:      controller.NewChartController(chartService),
		SessionController:    controller.NewSessionController(sessionService),
		ConsumerService:      consumerService,
		sweeper:              sweeper,
		sysLogger:            sysLogger,
	}
}

// Shutdown stops background workers and flushes logs.
func (c *Container) Shutdown() {
	c.sweeper.Stop()
	_ = c.sysLogger.Sync()
}

func initPipelineLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "pipeline.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[PIPELINE] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
