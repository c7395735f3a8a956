package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "…"

// truncate cuts value to limit display cells, ending in an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || lipgloss.Width(value) <= limit {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// truncatePath keeps the head and tail of a navigation path, since the last
// segment usually names the resource.
func truncatePath(path string, limit int) string {
	runes := []rune(strings.TrimSpace(path))
	if limit <= 0 || len(runes) <= limit {
		return string(runes)
	}
	if limit < 5 {
		return truncate(path, limit)
	}
	tail := (limit - 1) / 2
	head := limit - 1 - tail
	return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
