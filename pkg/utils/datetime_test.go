package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassDateTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"24 hour", "06/06/2025 18:30", time.Date(2025, 6, 6, 18, 30, 0, 0, loc)},
		{"12 hour AM", "06/06/2025 06:30 AM", time.Date(2025, 6, 6, 6, 30, 0, 0, loc)},
		{"12 hour PM", "06/06/2025 06:30 PM", time.Date(2025, 6, 6, 18, 30, 0, 0, loc)},
		{"lowercase meridiem", "06/06/2025 06:30 pm", time.Date(2025, 6, 6, 18, 30, 0, 0, loc)},
		{"surrounding spaces", "  01/12/2030 09:05  ", time.Date(2030, 12, 1, 9, 5, 0, 0, loc)},
		{"single digits", "1/2/2030 9:05", time.Date(2030, 2, 1, 9, 5, 0, 0, loc)},
		{"24 hour midnight", "06/06/2025 00:30", time.Date(2025, 6, 6, 0, 30, 0, 0, loc)},
		{"12 AM is midnight", "06/06/2025 12:30 AM", time.Date(2025, 6, 6, 0, 30, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClassDateTime(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseClassDateTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "2025-06-06T06:30:00Z", "32/01/2025 10:00", "06/13/2025 10:00", "06/06/2025 13:00 PM", "06/06/2025 00:30 PM", "06/06/2025 0:30 AM", "tomorrow"} {
		_, err := ParseClassDateTime(input, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDateTime, input)
	}
}

func TestFormatDisplay_RoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	parsed, err := ParseClassDateTime("06/06/2025 06:30 AM", loc)
	require.NoError(t, err)

	// Stored as UTC, rendered back in the application zone
	assert.Equal(t, "06/06/2025 06:30 AM", FormatDisplay(parsed.UTC(), loc))
	assert.Equal(t, "06/06/2025 01:00 AM", FormatDisplay(parsed, time.UTC))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())

	loc, err = LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	_, err = LoadLocation("Mars/Olympus")
	assert.Error(t, err)
}
