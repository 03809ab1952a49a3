package adaptor

import (
	"net/http"

	"fitness-booking/internal/dto/request"
	"fitness-booking/internal/usecase"
	"fitness-booking/pkg/apperror"
	"fitness-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (public)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		// Booking faults are reported to clients as a retryable validation error
		if apperror.KindOf(err) == apperror.KindInternal {
			h.log.Error("Unexpected error during booking creation", zap.Error(err))
			msg := apperror.MessageOf(err, "An unexpected error occurred. Please try again later.")
			utils.ResponseBadRequest(w, msg, map[string]string{apperror.NonFieldKey: msg})
			return
		}
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ListBookings handles GET /api/bookings?email=...&timezone=... (public)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	bookings, err := h.service.ListByEmail(r.Context(), request.ListBookingsRequest{
		Email:    query.Get("email"),
		Timezone: query.Get("timezone"),
	})
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
