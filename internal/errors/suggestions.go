package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidAmount:     "Amounts must be positive, for example '16oz', '500ml' or '2cups'.",
	ErrInvalidUnit:       "Supported units are oz, ml and cups.",
	ErrInvalidTimestamp:  "Try formats like '2 hours ago', 'yesterday at 3pm' or '9am'.",
	ErrEntryNotFound:     "Use 'hydrate entries' to see entry ids.",
	ErrDrinkTypeNotFound: "Use 'hydrate drinks' to see the drink catalog.",
	ErrNothingToUndo:     "Only the last add or delete can be undone.",
	ErrUnsupportedBackup: "Export a fresh backup with 'hydrate export'.",

	ErrDatabaseCorrupted: "Restore from a backup with 'hydrate import' or remove the data directory.",
	ErrDatabaseLocked:    "Another hydrate command is running. Wait for it to finish and try again.",
	ErrDiskFull:          "Free up disk space and try again.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/hydrate/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// An explicit suggestion on a ValidationError wins over the sentinel table.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ve, ok := AsValidationError(err); ok && ve.Suggestion != "" {
		return ve.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// Chain returns the full error chain as a slice of error messages.
func Chain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}

// FormatDebugError formats an error with its chain and category for --debug output.
func FormatDebugError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	if chain := Chain(err); len(chain) > 1 {
		sb.WriteString("\nError chain:\n")
		for i, msg := range chain {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, msg)
		}
	}

	fmt.Fprintf(&sb, "\nCategory: %s\n", Classify(err))

	if suggestion := GetSuggestion(err); suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", suggestion)
	}

	return sb.String()
}
