// Package render provides the width-aware text utilities of the status line:
// escape-sequence aware measuring, padding and truncation plus value formatting.
package render

import (
	"fmt"
	"time"
)

// FormatTokens formats a token count compactly: 950, 15.2k, 1.5M
func FormatTokens(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatPercent formats a percentage with one decimal, clamped to 0..100
func FormatPercent(pct float64) string {
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDuration formats an elapsed session time: 2hr 15m, 2hr, 45m, <1m
func FormatDuration(d time.Duration) string {
	totalMinutes := int(d.Minutes())
	if totalMinutes < 1 {
		return "<1m"
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours > 0 {
		if minutes == 0 {
			return fmt.Sprintf("%dhr", hours)
		}
		return fmt.Sprintf("%dhr %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
