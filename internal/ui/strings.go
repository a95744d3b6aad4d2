package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given display width, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle keeps both ends of a long value, which suits paths and URLs.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	endLen := (limit - 3) * 2 / 3
	startLen := limit - 3 - endLen
	return string(runes[:startLen]) + "..." + string(runes[len(runes)-endLen:])
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// formatMeasure prints a height or weight without trailing zeros.
func formatMeasure(value float64, unit string) string {
	if value <= 0 {
		return "?"
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + unit
}

// formatID renders a catalog number with at least three digits.
func formatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// statBar draws a bar of width cells for value out of ceiling.
func statBar(value, ceiling, width int) string {
	if width <= 0 {
		return ""
	}
	if ceiling <= 0 {
		ceiling = 1
	}
	filled := value * width / ceiling
	if value > 0 && filled == 0 {
		filled = 1
	}
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// shortID returns the leading segment of an activation token.
func shortID(token string) string {
	if i := strings.IndexByte(token, '-'); i > 0 {
		return token[:i]
	}
	return truncate(token, 8)
}
