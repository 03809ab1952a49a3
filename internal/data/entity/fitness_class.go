package entity

import (
	"fitness-booking/pkg/utils"
	"fmt"
	"time"
)

type FitnessClass struct {
	BaseNoDelete
	Name           string    `db:"name"`
	StartTime      time.Time `db:"start_time"`
	Instructor     string    `db:"instructor"`
	AvailableSlots int       `db:"available_slots"`
}

// IsUpcoming reports whether the class starts at or after now.
func (c *FitnessClass) IsUpcoming(now time.Time) bool {
	return !c.StartTime.Before(now)
}

// IsBookable reports whether a booking may be taken at now.
func (c *FitnessClass) IsBookable(now time.Time) bool {
	return c.IsUpcoming(now) && c.AvailableSlots > 0
}

// Display renders "<name> - DD/MM/YYYY hh:MM AM/PM" in loc.
func (c *FitnessClass) Display(loc *time.Location) string {
	return fmt.Sprintf("%s - %s", c.Name, utils.FormatDisplay(c.StartTime, loc))
}
