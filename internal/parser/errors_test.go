package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/hydrate/internal/errors"
)

func TestParseErrorError(t *testing.T) {
	err := &ParseError{
		Input:   "badtime",
		Field:   "timestamp",
		Message: "could not parse time",
	}
	result := err.Error()
	assert.Contains(t, result, "invalid timestamp")
	assert.Contains(t, result, "badtime")
	assert.Contains(t, result, "could not parse time")
}

func TestNewParseError(t *testing.T) {
	err := NewParseError("amount", "xyz", "invalid format", "16", "16oz", "500ml")
	assert.Equal(t, "amount", err.Field)
	assert.Equal(t, "xyz", err.Input)
	assert.Equal(t, "invalid format", err.Message)
	assert.Len(t, err.Examples, 3)
	assert.Equal(t, "16", err.Examples[0])
}

func TestParseErrorIsValidation(t *testing.T) {
	err := NewAmountError("lots")
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.True(t, errors.Is(err, errors.ErrInvalidAmount))
	assert.False(t, errors.Is(err, errors.ErrNotFound))

	assert.True(t, errors.Is(NewUnitError("l"), errors.ErrInvalidUnit))
	assert.True(t, errors.Is(NewTimestampError("x"), errors.ErrInvalidTimestamp))
}

func TestFormatWithExamples(t *testing.T) {
	t.Run("with_examples", func(t *testing.T) {
		err := &ParseError{
			Input:    "badtime",
			Field:    "timestamp",
			Message:  "could not parse",
			Examples: []string{"9am", "10:30", "2pm"},
		}
		result := err.FormatWithExamples()
		assert.Contains(t, result, "invalid timestamp")
		assert.Contains(t, result, "Valid examples:")
		assert.Contains(t, result, "9am")
		assert.Contains(t, result, "10:30")
	})

	t.Run("with_suggestion", func(t *testing.T) {
		err := NewUnitError("pints")
		result := err.FormatWithExamples()
		assert.Contains(t, result, "Supported units")
		assert.Contains(t, result, "cups")
	})

	t.Run("no_examples_no_suggestion", func(t *testing.T) {
		err := &ParseError{
			Input:   "badtime",
			Field:   "timestamp",
			Message: "could not parse",
		}
		result := err.FormatWithExamples()
		assert.NotContains(t, result, "Valid examples:")
	})
}

func TestStandardErrors(t *testing.T) {
	tests := []struct {
		err      *ParseError
		field    string
		examples []string
	}{
		{NewAmountError("x"), "amount", AmountExamples},
		{NewTimestampError("x"), "timestamp", TimestampExamples},
		{NewDayError("x"), "day", DayExamples},
		{NewWeekError("x"), "week", WeekExamples},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.field, tt.err.Field)
			assert.Equal(t, "x", tt.err.Input)
			assert.Equal(t, tt.examples, tt.err.Examples)
			assert.NotEmpty(t, tt.err.Suggestion)
		})
	}
}

func TestToValidationError(t *testing.T) {
	t.Run("with_suggestion", func(t *testing.T) {
		ve := NewAmountError("lots").ToValidationError()
		assert.Equal(t, "amount", ve.Field)
		assert.Equal(t, "lots", ve.Value)
		assert.Contains(t, ve.Suggestion, "oz, ml or cups")
		assert.True(t, errors.Is(ve, errors.ErrInvalidAmount))
	})

	t.Run("with_examples_no_suggestion", func(t *testing.T) {
		err := &ParseError{
			Input:    "badtime",
			Field:    "timestamp",
			Message:  "could not parse",
			Examples: []string{"9am", "10:30", "2pm", "5pm"},
		}
		ve := err.ToValidationError()
		assert.Equal(t, "Try: 9am, 10:30, 2pm", ve.Suggestion)
	})
}
