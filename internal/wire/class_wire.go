package wire

import (
	"fitness-booking/internal/adaptor"
	"fitness-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClass(
	r chi.Router,
	classHandler *adaptor.ClassHandler,
	auth middleware.Authenticator,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/classes - List upcoming classes
	r.Get("/api/classes", classHandler.ListClasses)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.BasicAuth(auth, log))
		r.Use(middleware.Admin(log))

		// POST /api/classes - Create a class
		r.Post("/api/classes", classHandler.CreateClass)
	})
}
