package entity

import "strings"

// FormatDuration renders minutes as "H hours M minutes", leaving out a zero
// part: 45 -> "45 minutes", 60 -> "1 hour", 90 -> "1 hour 30 minutes".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return pluralize(0, "minute")
	}

	hours, rest := minutes/60, minutes%60
	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if rest > 0 {
		parts = append(parts, pluralize(rest, "minute"))
	}
	return strings.Join(parts, " ")
}
