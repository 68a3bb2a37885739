package worktime

import (
	"fmt"
	"strings"
)

// FormatMinutes converts a minute count to a human-friendly string.
// Examples: 90 -> "1h 30m", 30 -> "30m", 0 -> "0m".
func FormatMinutes(m int) string {
	if m <= 0 {
		return "0m"
	}

	hours := m / 60
	mins := m % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || hours == 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}

	return strings.Join(parts, " ")
}
