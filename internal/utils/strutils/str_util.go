package strutils

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase returns the string with the first letter of each word capitalized.
// e.g. "order details" → "Order Details"
func ToTitleCase(s string) string {
	// Create a Unicode-aware title caser
	caser := cases.Title(language.English)

	// Apply title casing to lowercase string
	return caser.String(strings.ToLower(s))
}

// Truncate shortens s to at most width terminal cells, marking the cut with …
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Quote wraps each value in single quotes, the way query values are shown.
func Quote(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "'" + v + "'"
	}
	return out
}
