package wire

import (
	"fitness-booking/internal/adaptor"
	"fitness-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	limiter *middleware.RateLimiter,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/bookings?email=...&timezone=... - Bookings of one client
	r.Get("/api/bookings", bookingHandler.ListBookings)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler(log))

		// POST /api/bookings - Book a slot (rate limited per IP)
		r.Post("/api/bookings", bookingHandler.CreateBooking)
	})
}
