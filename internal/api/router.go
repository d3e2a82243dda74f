package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/daypulse/daypulse/docs"
	"github.com/daypulse/daypulse/internal/api/handler"
	"github.com/daypulse/daypulse/internal/api/middleware"
)

type Router struct {
	sampleHandler *handler.SampleHandler
	planHandler   *handler.PlanHandler
}

func NewRouter(sampleHandler *handler.SampleHandler, planHandler *handler.PlanHandler) *Router {
	return &Router{
		sampleHandler: sampleHandler,
		planHandler:   planHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Wellness samples
		r.Route("/samples", func(r chi.Router) {
			r.Post("/", rt.sampleHandler.Create)
			r.Get("/", rt.sampleHandler.List)
		})

		// Derived day plans
		r.Route("/days/{date}", func(r chi.Router) {
			r.Get("/plan", rt.planHandler.GetPlan)
			r.Get("/energy-flow", rt.planHandler.GetEnergyFlow)
			r.Get("/recovery", rt.planHandler.GetRecovery)
		})
	})

	return r
}
