package timeutil_test

import (
	"math"
	"testing"
	"time"

	"github.com/sgaunet/dateutil/internal/timeutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		// Zero and basic cases
		{
			name:     "zero duration",
			duration: 0,
			expected: "0s",
		},
		{
			name:     "seconds only",
			duration: 45 * time.Second,
			expected: "45s",
		},
		{
			name:     "boundary - 59 seconds",
			duration: 59 * time.Second,
			expected: "59s",
		},
		{
			name:     "boundary - 60 seconds",
			duration: 60 * time.Second,
			expected: "1m 0s",
		},
		{
			name:     "minutes and seconds",
			duration: 1*time.Minute + 23*time.Second,
			expected: "1m 23s",
		},
		{
			name:     "boundary - 1 hour",
			duration: time.Hour,
			expected: "1h 0m 0s",
		},
		{
			name:     "hours and seconds",
			duration: 2*time.Hour + 5*time.Second,
			expected: "2h 0m 5s",
		},
		{
			name:     "boundary - 1 day",
			duration: 24 * time.Hour,
			expected: "1d 0h 0m 0s",
		},
		{
			name:     "days and hours",
			duration: 3*24*time.Hour + 4*time.Hour,
			expected: "3d 4h 0m 0s",
		},
		{
			name:     "leap year",
			duration: 366 * 24 * time.Hour,
			expected: "366d 0h 0m 0s",
		},

		// Rounding
		{
			name:     "rounds down below half",
			duration: 10*time.Second + 499*time.Millisecond,
			expected: "10s",
		},
		{
			name:     "rounds up at half",
			duration: 59*time.Second + 500*time.Millisecond,
			expected: "1m 0s",
		},
		{
			name:     "sub-second rounds to zero",
			duration: 400 * time.Millisecond,
			expected: "0s",
		},

		// Negative durations
		{
			name:     "negative seconds",
			duration: -30 * time.Second,
			expected: "-30s",
		},
		{
			name:     "negative minutes",
			duration: -(time.Minute + 30*time.Second),
			expected: "-1m 30s",
		},
		{
			name:     "negative days",
			duration: -(2*24*time.Hour + time.Minute),
			expected: "-2d 0h 1m 0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeutil.FormatDuration(tt.duration))
		})
	}
}

func TestFormatDuration_Extremes(t *testing.T) {
	assert.Equal(t, "106751d 23h 47m 16s", timeutil.FormatDuration(time.Duration(math.MaxInt64)))
	assert.Equal(t, "-106751d 23h 47m 16s", timeutil.FormatDuration(time.Duration(math.MinInt64)))
}
