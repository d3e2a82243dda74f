// DayPulse API
//
// REST API for circadian and recovery based productivity scoring.
//
//	@title			DayPulse API
//	@version		1.0
//	@description	Adaptive circadian and recovery based productivity scoring engine.
//
//	@BasePath	/v1
//
//	@tag.name			samples
//	@tag.description	Wellness sample ingestion endpoints
//
//	@tag.name			days
//	@tag.description	Daily plan and scoring endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/daypulse/daypulse/internal/api"
	"github.com/daypulse/daypulse/internal/api/handler"
	"github.com/daypulse/daypulse/internal/config"
	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/internal/llm"
	"github.com/daypulse/daypulse/internal/repository"
	"github.com/daypulse/daypulse/internal/seed"
	"github.com/daypulse/daypulse/internal/service"
	"github.com/daypulse/daypulse/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when OTLP_ENDPOINT is unset)
	shutdown, err := telemetry.InitTracer(context.Background(), cfg, "daypulse-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.WellnessSample{}, &domain.DailyReport{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Scoring parameters from env overrides
	params := cfg.ScoringParams()
	if err := params.Validate(); err != nil {
		log.Fatalf("Invalid scoring parameters: %v", err)
	}

	// Initialize repositories
	sampleRepo := repository.NewWellnessRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAdvisoryModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, plans will carry no commentary")
	}

	// Initialize services
	var advisor llm.AdvisoryLLM
	if openaiClient != nil {
		advisor = openaiClient
	}
	planService := service.NewPlanService(sampleRepo, reportRepo, advisor, params, cfg.CacheSize)
	sampleService := service.NewSampleService(sampleRepo, planService)

	// Initialize handlers
	sampleHandler := handler.NewSampleHandler(sampleService)
	planHandler := handler.NewPlanHandler(planService)

	// Setup router
	router := api.NewRouter(sampleHandler, planHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
