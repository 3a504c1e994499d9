package validate

import (
	"strings"
	"unicode"
)

// SanitizeLabel trims a label and removes control characters.
func SanitizeLabel(label string) string {
	return strings.TrimSpace(StripControlChars(label))
}

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
