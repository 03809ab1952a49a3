package utils

import (
	"errors"
	"strings"
	"time"
)

const (
	DefaultTimezone = "Asia/Kolkata"

	// DisplayLayout renders DD/MM/YYYY hh:MM AM/PM
	DisplayLayout = "02/01/2006 03:04 PM"
)

// accepted class date-time inputs, tried in order
const (
	inputLayout24 = "2/1/2006 15:04"
	inputLayout12 = "2/1/2006 3:04 PM"
)

var inputLayouts = []string{inputLayout24, inputLayout12}

var ErrInvalidDateTime = errors.New("datetime has wrong format. Use one of these formats instead: DD/MM/YYYY HH:MM, DD/MM/YYYY hh:MM AM/PM")

// ParseClassDateTime parses a naive date-time in loc.
func ParseClassDateTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range inputLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err != nil {
			continue
		}
		// time accepts 00 as a 12-hour clock value, 12-hour input runs 1..12
		if layout == inputLayout12 && zeroHour(value) {
			break
		}
		return t, nil
	}
	return time.Time{}, ErrInvalidDateTime
}

func zeroHour(value string) bool {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return false
	}
	hour, _, _ := strings.Cut(fields[1], ":")
	return strings.Trim(hour, "0") == ""
}

func FormatDisplay(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DisplayLayout)
}

// LoadLocation resolves an IANA zone name, falling back to DefaultTimezone when empty
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}
