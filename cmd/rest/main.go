package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-chartgen-be/internal/bootstrap"
	"ai-chartgen-be/internal/config"
	"ai-chartgen-be/internal/server"
	"ai-chartgen-be/internal/tracer"

	"github.com/fatih/color"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	color.Cyan("ai-chartgen-be - document-grounded chart generation")
	color.Green("Environment: %s | LLM: %s (%s)", cfg.App.Environment, cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 6. Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		container.Shutdown()
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
