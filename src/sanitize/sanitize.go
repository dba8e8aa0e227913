// Package sanitize cleans values reported by the CI server before they reach
// the console or the CSV file.
package sanitize

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var lineBreaks = strings.NewReplacer("\r\n", "", "\r", "", "\n", "")

// StripLineBreaks removes carriage returns and newlines.
func StripLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// Value removes ANSI escape sequences and line breaks so a value fits on one
// report line and in one CSV cell.
func Value(s string) string {
	return StripLineBreaks(ansi.Strip(s))
}
