package entity

import (
	"github.com/google/uuid"
)

// Booking reserves one slot of a FitnessClass. CreatedAt is the booking time.
type Booking struct {
	BaseSimple
	FitnessClassID uuid.UUID `db:"fitness_class_id"`
	ClientName     string    `db:"client_name"`
	ClientEmail    string    `db:"client_email"`
}
