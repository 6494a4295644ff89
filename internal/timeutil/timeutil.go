// Package timeutil provides time formatting utilities.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// FormatDuration formats a duration into a human-readable string.
// It rounds to the nearest second and starts at the largest non-zero unit.
//
// Examples:
//   - 45s for durations < 1 minute
//   - 1m 23s for durations >= 1 minute
//   - 2h 0m 5s for durations >= 1 hour
//   - 3d 4h 0m 0s for durations >= 1 day
//   - -1m 30s for negative durations
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	sign := ""
	secs := uint64(d / time.Second)
	if d < 0 {
		sign = "-"
		secs = uint64(-(d / time.Second))
	}

	days := secs / secondsPerDay
	hours := secs % secondsPerDay / 3600
	minutes := secs % 3600 / 60
	seconds := secs % 60

	var parts []string
	switch {
	case days > 0:
		parts = append(parts, fmt.Sprintf("%dd", days), fmt.Sprintf("%dh", hours),
			fmt.Sprintf("%dm", minutes), fmt.Sprintf("%ds", seconds))
	case hours > 0:
		parts = append(parts, fmt.Sprintf("%dh", hours), fmt.Sprintf("%dm", minutes), fmt.Sprintf("%ds", seconds))
	case minutes > 0:
		parts = append(parts, fmt.Sprintf("%dm", minutes), fmt.Sprintf("%ds", seconds))
	default:
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return sign + strings.Join(parts, " ")
}
