package wire

import (
	"fitness-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSystem(r chi.Router, systemHandler *adaptor.SystemHandler) {
	// GET /health - Database reachability
	r.Get("/health", systemHandler.Health)

	// GET /metrics - Prometheus exposition
	r.Method("GET", "/metrics", systemHandler.Metrics())
}
