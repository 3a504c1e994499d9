// Package errors provides consistent error types for Hydrate.
// It defines the failures the engine surfaces to callers: ValidationError
// (bad input, never retried), NotFoundError (unknown id) and SystemError
// (storage or environment problems).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidUnit       = errors.New("invalid unit")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrEntryNotFound     = errors.New("entry not found")
	ErrDrinkTypeNotFound = errors.New("drink type not found")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrDatabaseCorrupted = errors.New("database corrupted")
	ErrDatabaseLocked    = errors.New("database locked by another process")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUnsupportedBackup = errors.New("unsupported backup version")
	ErrDiskFull          = errors.New("disk full")
)

// ValidationError reports an out-of-range or missing value supplied by the
// caller. It always matches ErrValidation with errors.Is.
type ValidationError struct {
	Field      string // The field/input that caused the error
	Value      string // The invalid value (optional)
	Message    string // What is wrong with it
	Suggestion string // How to fix it (optional)
	Cause      error  // A more specific sentinel (optional)
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s '%s'", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithValue creates a ValidationError carrying the offending
// value and a cause sentinel.
func NewValidationErrorWithValue(field, value, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion sets the suggestion and returns the error for chaining.
func (e *ValidationError) WithSuggestion(s string) *ValidationError {
	e.Suggestion = s
	return e
}

// NotFoundError reports that an operation referenced an id that is not
// present in a repository. It always matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Kind  string // entry, goal, drink type
	ID    string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a NotFoundError for the given kind and id.
func NewNotFoundError(kind, id string, cause error) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id, Cause: cause}
}

// EntryNotFound is shorthand for a missing water entry.
func EntryNotFound(id string) *NotFoundError {
	return NewNotFoundError("entry", id, ErrEntryNotFound)
}

// DrinkTypeNotFound is shorthand for a missing drink type.
func DrinkTypeNotFound(value string) *NotFoundError {
	return NewNotFoundError("drink type", value, ErrDrinkTypeNotFound)
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: database corruption, permission problems, a locked data directory.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsNotFoundError extracts a NotFoundError from an error chain.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var ne *NotFoundError
	ok := errors.As(err, &ne)
	return ne, ok
}

// Is is re-exported from the standard errors package for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is re-exported from the standard errors package for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New is re-exported from the standard errors package for convenience.
func New(text string) error {
	return errors.New(text)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
