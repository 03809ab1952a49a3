package adaptor

import (
	"context"
	"net/http"
	"time"

	"fitness-booking/pkg/database"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type SystemHandler struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSystemHandler(db database.PgxIface, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		db:  db,
		log: log.With(zap.String("handler", "system")),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("UNAVAILABLE"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Metrics handles GET /metrics
func (h *SystemHandler) Metrics() http.Handler {
	return promhttp.Handler()
}
