package request

import "strings"

// CreateClassRequest accepts fitness_class_name and class_datetime as aliases
// of name and start_time.
type CreateClassRequest struct {
	Name           string `json:"name" validate:"required,nonul,max=50"`
	StartTime      string `json:"start_time" validate:"required,nonul"`
	Instructor     string `json:"instructor" validate:"required,nonul,max=100"`
	AvailableSlots *int   `json:"available_slots" validate:"omitempty,min=0,max=2147483647"`

	FitnessClassName string `json:"fitness_class_name,omitempty"`
	ClassDatetime    string `json:"class_datetime,omitempty"`
}

// Normalize resolves aliases and trims surrounding whitespace
func (r *CreateClassRequest) Normalize() {
	if strings.TrimSpace(r.Name) == "" {
		r.Name = r.FitnessClassName
	}
	if strings.TrimSpace(r.StartTime) == "" {
		r.StartTime = r.ClassDatetime
	}
	r.Name = strings.TrimSpace(r.Name)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.Instructor = strings.TrimSpace(r.Instructor)
}

// Slots returns available_slots, 0 when omitted
func (r *CreateClassRequest) Slots() int {
	if r.AvailableSlots == nil {
		return 0
	}
	return *r.AvailableSlots
}
