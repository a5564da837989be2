package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/career-mentor/internal/config"
	"alfredoptarigan/career-mentor/internal/handlers"
	"alfredoptarigan/career-mentor/internal/pkg/logger"
	"alfredoptarigan/career-mentor/internal/repositories"
	"alfredoptarigan/career-mentor/internal/router"
	"alfredoptarigan/career-mentor/internal/services"
)

func main() {
	// Load configuration
	cfg, envFileFound := config.Load()

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !envFileFound {
		log.Info("No .env file found. Using environment and default values.")
	}
	log.Info("✅ Config loaded", "env", cfg.Server.Env, "db_driver", cfg.Database.Driver, "llm_provider", cfg.LLM.Provider)

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal("❌ Failed to initialize database", "error", err)
	}
	log.Info("✅ Database connected and migrated")

	// Initialize repositories
	formRepo := repositories.NewCareerFormRepository(db)
	roadmapRepo := repositories.NewRoadmapRepository(db)
	statusRepo := repositories.NewStatusCheckRepository(db)

	// Initialize LLM gateway
	ctx := context.Background()
	gateway, err := services.NewGatewayFromConfig(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("❌ Failed to initialize LLM gateway", "error", err)
	}
	if gateway == nil {
		log.Warn("⚠️  No LLM API key configured, every submission will receive the fallback roadmap")
	} else {
		log.Info("✅ LLM gateway initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	}

	generator := services.NewRoadmapGenerator(gateway, services.GeneratorOptions{
		Timeout:      cfg.LLM.Timeout,
		StrictSchema: cfg.Generator.StrictSchema,
	}, log.With("component", "roadmap_generator"))

	app := router.New(router.Handlers{
		CareerForm: handlers.NewCareerFormHandler(formRepo, roadmapRepo, generator, log.With("component", "career_form")),
		Roadmap:    handlers.NewRoadmapHandler(roadmapRepo, log.With("component", "roadmap")),
		Status:     handlers.NewStatusHandler(statusRepo),
	}, router.Options{
		APIPrefix:   cfg.Server.APIPrefix,
		CORSOrigins: cfg.Server.CORSOrigins,
		AccessLog:   true,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error("❌ Server forced to shutdown", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("🚀 Server starting", "addr", addr, "prefix", cfg.Server.APIPrefix)

	if err := app.Listen(addr); err != nil {
		log.Error("❌ Failed to start server", "error", err)
	}

	if err := config.CloseDatabase(db); err != nil {
		log.Error("❌ Failed to close database", "error", err)
	}
	log.Info("✅ Database connection closed")
}
