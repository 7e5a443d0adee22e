package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{name: "zero", input: 0, expected: "0s"},
		{name: "seconds", input: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", input: 90 * time.Second, expected: "1m 30s"},
		{name: "exactly one hour", input: time.Hour, expected: "1h 00m"},
		{name: "hours and minutes", input: 2*time.Hour + 5*time.Minute + 59*time.Second, expected: "2h 05m"},
		{name: "rounds to seconds", input: 1500 * time.Millisecond, expected: "2s"},
		{name: "negative uses magnitude", input: -70 * time.Second, expected: "1m 10s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", FormatPercent(30*time.Minute, time.Hour))
	assert.Equal(t, "0.0%", FormatPercent(time.Minute, 0))
	assert.Equal(t, "33.3%", FormatPercent(20*time.Minute, time.Hour))
}

func TestFormatClock(t *testing.T) {
	day := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "07:11:30", FormatClock(time.Date(2025, 4, 19, 7, 11, 30, 0, time.UTC), day))
	assert.Equal(t, "24:00:00", FormatClock(time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), day))
}
