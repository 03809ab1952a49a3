package adaptor

import (
	"fitness-booking/internal/usecase"
	"fitness-booking/pkg/database"

	"go.uber.org/zap"
)

type Handler struct {
	Class   *ClassHandler
	Booking *BookingHandler
	System  *SystemHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, log *zap.Logger) *Handler {
	return &Handler{
		Class:   NewClassHandler(service.Class, log),
		Booking: NewBookingHandler(service.Booking, log),
		System:  NewSystemHandler(db, log),
	}
}
