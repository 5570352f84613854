package routers

import (
	"github.com/csaba-schmidtmayer/trivia-api/internal/handlers"
	"github.com/csaba-schmidtmayer/trivia-api/internal/metrics"

	"github.com/go-chi/chi/v5"
)

func HealthRoutes(r chi.Router, healthHandler *handlers.HealthHandler) {
	r.Get("/healthz", healthHandler.HealthzHandler)
	r.Get("/readyz", healthHandler.ReadyzHandler)
	r.Method("GET", "/metrics", metrics.Handler())
}
