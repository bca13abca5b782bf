// internal/util/util.go
package util

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// FormatFloat renders v with at most maxDecimals fractional digits,
// trimming trailing zeros so heatmap cells stay compact.
func FormatFloat(v float64, maxDecimals int) string {
	s := strconv.FormatFloat(v, 'f', maxDecimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// PadRight pads text with spaces to the given rune width, truncating when
// it is too long.
func PadRight(text string, width int) string {
	count := utf8.RuneCountInString(text)
	if count > width {
		if width <= 0 {
			return ""
		}
		return TruncateRunes(text, width-1)
	}
	return text + strings.Repeat(" ", width-count)
}
