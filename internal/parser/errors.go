package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/hydrate/internal/errors"
)

// ParseError represents a parsing error with helpful suggestions.
type ParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
	Cause      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Is reports whether target is errors.ErrValidation, so parse failures are
// classified as user errors.
func (e *ParseError) Is(target error) bool {
	return target == errors.ErrValidation
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error with examples.
func NewParseError(field, input, message string, examples ...string) *ParseError {
	return &ParseError{
		Input:    input,
		Field:    field,
		Message:  message,
		Examples: examples,
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// AmountExamples provides example amount formats.
var AmountExamples = []string{
	"16",
	"16oz",
	"500ml",
	"2 cups",
	"0.5cups",
}

// TimestampExamples provides example timestamp formats.
var TimestampExamples = []string{
	"9am",
	"5:30pm",
	"14:30",
	"yesterday at 3pm",
	"2 hours ago",
	"now",
}

// DayExamples provides example day formats.
var DayExamples = []string{
	"today",
	"yesterday",
	"monday",
	"2026-04-08",
}

// WeekExamples provides example week formats.
var WeekExamples = []string{
	"this week",
	"last week",
	"2 weeks ago",
	"2026-04-08",
}

// NewAmountError creates an amount parse error with standard examples.
func NewAmountError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "amount",
		Message:    "could not parse amount",
		Examples:   AmountExamples,
		Suggestion: "Amounts are positive numbers, optionally followed by oz, ml or cups.",
		Cause:      errors.ErrInvalidAmount,
	}
}

// NewUnitError creates a unit parse error.
func NewUnitError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "unit",
		Message:    "unknown unit",
		Examples:   []string{"oz", "ml", "cups"},
		Suggestion: "Supported units are oz, ml and cups.",
		Cause:      errors.ErrInvalidUnit,
	}
}

// NewTimestampError creates a timestamp parse error with standard examples.
func NewTimestampError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "timestamp",
		Message:    "could not parse time",
		Examples:   TimestampExamples,
		Suggestion: "Try using natural language like '9am', '2 hours ago', or '14:30'.",
		Cause:      errors.ErrInvalidTimestamp,
	}
}

// NewDayError creates a day parse error with standard examples.
func NewDayError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "day",
		Message:    "could not parse day",
		Examples:   DayExamples,
		Suggestion: "Use 'today', 'yesterday', a weekday or a YYYY-MM-DD date.",
		Cause:      errors.ErrInvalidTimestamp,
	}
}

// NewWeekError creates a week parse error with standard examples.
func NewWeekError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "week",
		Message:    "could not parse week",
		Examples:   WeekExamples,
		Suggestion: "Use 'this week', 'last week' or any date inside the week.",
		Cause:      errors.ErrInvalidTimestamp,
	}
}

// ToValidationError converts a ParseError to a ValidationError for
// consistent handling.
func (e *ParseError) ToValidationError() *errors.ValidationError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	return errors.NewValidationErrorWithValue(e.Field, e.Input, e.Message, e.Cause).
		WithSuggestion(suggestion)
}
