package derive

import (
	"fmt"
	"time"
)

// RelativeTime formats the distance between t and now as a coarse human
// phrase ("just now", "3 days ago"). Bands are evaluated in order: minutes,
// hours, days, weeks (7 days), months (30 days), years (365 days).
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	secs := int(diff.Seconds())
	mins := secs / 60
	hours := mins / 60
	days := hours / 24
	weeks := days / 7
	months := days / 30
	years := days / 365

	switch {
	case secs < 60:
		return "just now"
	case mins < 60:
		return pluralize(mins, "minute")
	case hours < 24:
		return pluralize(hours, "hour")
	case days < 7:
		return pluralize(days, "day")
	case weeks < 4:
		return pluralize(weeks, "week")
	case months < 12:
		return pluralize(months, "month")
	default:
		return pluralize(years, "year")
	}
}

// pluralize returns "N unit ago" or "N units ago" with proper pluralization
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
