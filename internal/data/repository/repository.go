package repository

import (
	"errors"
	"fitness-booking/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrClassNotBookable means the class is missing or already started.
	ErrClassNotBookable = errors.New("fitness class does not exist or is not upcoming")
	// ErrNoAvailableSlots means the class has no slot left to decrement.
	ErrNoAvailableSlots = errors.New("no available slots for this class")
)

type Repository struct {
	Class   ClassRepository
	Booking BookingRepository
	User    UserRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Class:   NewClassRepository(db, log),
		Booking: NewBookingRepository(db, log),
		User:    NewUserRepository(db, log),
	}
}
