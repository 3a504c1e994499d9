// Package validate provides input validation helpers for the drink catalog.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/hydrate/internal/errors"
)

const (
	// MaxValueLength is the maximum length for a drink type value.
	MaxValueLength = 32
	// MaxLabelLength is the maximum length for a drink type label.
	MaxLabelLength = 64
	// MaxIconLength is the maximum length for an icon name or emoji, in runes.
	MaxIconLength = 32
)

// valueRegex validates normalized drink type values ("sports drink", "oat-milk").
var valueRegex = regexp.MustCompile(`^[\p{Ll}0-9][\p{Ll}0-9 ._-]*$`)

// DrinkValue validates a normalized drink type value.
func DrinkValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationError("value", "drink type value is required").
			WithSuggestion("Name the drink, for example 'tea' or 'sports drink'.")
	}
	if utf8.RuneCountInString(value) > MaxValueLength {
		return errors.NewValidationErrorWithValue("value", value, "drink type value too long", nil).
			WithSuggestion("Drink type values must be 32 characters or fewer.")
	}
	if !valueRegex.MatchString(value) {
		return errors.NewValidationErrorWithValue("value", value, "invalid drink type value", nil).
			WithSuggestion("Use letters, numbers, spaces, dashes, underscores or periods.")
	}
	return nil
}

// Label validates a drink type label.
func Label(label string) error {
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return errors.NewValidationErrorWithValue("label", label, "label too long", nil).
			WithSuggestion("Labels must be 64 characters or fewer.")
	}
	return nil
}

// Icon validates a drink type icon ("Droplets", "☕"). Empty is allowed.
func Icon(icon string) error {
	if utf8.RuneCountInString(icon) > MaxIconLength {
		return errors.NewValidationErrorWithValue("icon", icon, "icon too long", nil).
			WithSuggestion("Icons must be 32 characters or fewer.")
	}
	return nil
}
