package response

import (
	"fitness-booking/internal/data/entity"
	"time"
)

// DisplayUnavailable replaces the class display when the class cannot be read
const DisplayUnavailable = "N/A"

type BookingResponse struct {
	ID                  string    `json:"id"`
	FitnessClassID      string    `json:"fitness_class_id"`
	FitnessClassDisplay string    `json:"fitness_class_display"`
	ClientName          string    `json:"client_name"`
	ClientEmail         string    `json:"client_email"`
	BookedAt            time.Time `json:"booked_at"`
}

func BookingToResponse(booking *entity.Booking, display string) BookingResponse {
	return BookingResponse{
		ID:                  booking.ID.String(),
		FitnessClassID:      booking.FitnessClassID.String(),
		FitnessClassDisplay: display,
		ClientName:          booking.ClientName,
		ClientEmail:         booking.ClientEmail,
		BookedAt:            booking.CreatedAt,
	}
}
