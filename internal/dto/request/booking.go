package request

import "strings"

// CreateBookingRequest accepts the class reference as fitness_class_id or
// fitness_class. Errors on it are reported under fitness_class.
type CreateBookingRequest struct {
	FitnessClass string `json:"fitness_class" validate:"required,nonul"`
	ClientName   string `json:"client_name" validate:"required,nonul,max=100"`
	ClientEmail  string `json:"client_email" validate:"required,nonul,email,max=254"`

	FitnessClassID string `json:"fitness_class_id,omitempty"`
}

// Normalize resolves aliases and trims surrounding whitespace
func (r *CreateBookingRequest) Normalize() {
	if strings.TrimSpace(r.FitnessClass) == "" {
		r.FitnessClass = r.FitnessClassID
	}
	r.FitnessClass = strings.TrimSpace(r.FitnessClass)
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientEmail = strings.TrimSpace(r.ClientEmail)
}

type ListBookingsRequest struct {
	Email    string
	Timezone string
}
