package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// VisualWidth returns the display width of text, accounting for multi-byte characters
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates text to maxLen characters (visual width) with optional ellipsis
func Truncate(s string, maxLen int, ellipsis bool) string {
	s = strings.TrimSpace(s)
	if maxLen <= 0 {
		return ""
	}

	if VisualWidth(s) > maxLen {
		if ellipsis && maxLen > 3 {
			return runewidth.Truncate(s, maxLen-3, "") + "..."
		}
		return runewidth.Truncate(s, maxLen, "")
	}
	return s
}

// PadRight pads text with spaces to exactly width columns. Longer text is returned unchanged.
func PadRight(s string, width int) string {
	if w := VisualWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
