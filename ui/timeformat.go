package ui

import (
	"fmt"
	"time"
)

// FormatRelativeTime formats a time as a human-readable relative string.
// Examples: "just now", "2m ago", "3h ago", "5d ago"
func FormatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

// FormatLastEvent formats when the last dimension event arrived, handling
// nil (no event yet).
func FormatLastEvent(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return FormatRelativeTime(*t)
}
