package response

import (
	"fitness-booking/internal/data/entity"
	"fitness-booking/pkg/utils"
	"time"
)

type ClassResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DateTime       string `json:"datetime"`
	Instructor     string `json:"instructor"`
	AvailableSlots int    `json:"available_slots"`
	IsUpcoming     bool   `json:"is_upcoming"`
}

func ClassToResponse(class *entity.FitnessClass, loc *time.Location, isUpcoming bool) ClassResponse {
	return ClassResponse{
		ID:             class.ID.String(),
		Name:           class.Name,
		DateTime:       utils.FormatDisplay(class.StartTime, loc),
		Instructor:     class.Instructor,
		AvailableSlots: class.AvailableSlots,
		IsUpcoming:     isUpcoming,
	}
}
