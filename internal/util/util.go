// Package util holds small shared helpers for time presentation.
package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// CeilDays converts a duration to whole days, rounding up. Non-positive
// durations yield 0, so callers can show "あと0日" instead of a negative count.
func CeilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Hours() / 24))
}
