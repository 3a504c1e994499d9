package runtime

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/manav03panchal/hydrate/internal/errors"
	"github.com/manav03panchal/hydrate/internal/parser"
)

// Error statuses reported in JSON output.
const (
	StatusValidation = "validation_error"
	StatusNotFound   = "not_found"
	StatusSystem     = "system_error"
	StatusError      = "error"
)

// FormatError formats an error for the terminal. Parse errors list valid
// examples; everything else gets its category-specific message and
// suggestion. Debug mode prints the whole chain.
func FormatError(err error, debug bool) string {
	if err == nil {
		return ""
	}
	if debug {
		return errors.FormatDebugError(err)
	}

	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.FormatWithExamples()
	}
	return errors.FormatByCategory(err)
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.ToValidationError().Suggestion
	}
	return errors.GetSuggestion(err)
}

// ErrorStatus maps an error to the status field of a JSON error response.
func ErrorStatus(err error) string {
	switch {
	case errors.Is(err, errors.ErrValidation):
		return StatusValidation
	case errors.Is(err, errors.ErrNotFound):
		return StatusNotFound
	case errors.Classify(err) == errors.CategorySystem:
		return StatusSystem
	default:
		return StatusError
	}
}

// DiskFullError represents a disk full condition with additional context.
type DiskFullError struct {
	Op      string // The operation that failed (e.g., "export", "import")
	Path    string // The path involved, if known
	wrapped error
}

func (e *DiskFullError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("disk full during %s on %s: %v", e.Op, e.Path, e.wrapped)
	}
	return fmt.Sprintf("disk full during %s: %v", e.Op, e.wrapped)
}

func (e *DiskFullError) Unwrap() error {
	return errors.ErrDiskFull
}

// NewDiskFullError creates a new DiskFullError.
func NewDiskFullError(op, path string, err error) *DiskFullError {
	return &DiskFullError{
		Op:      op,
		Path:    path,
		wrapped: err,
	}
}

var diskFullPatterns = []string{
	"no space left on device",
	"disk full",
	"enospc",
	"not enough space",
	"insufficient disk space",
	"out of disk space",
}

// IsDiskFullError checks if an error indicates a disk full condition.
// Badger and sqlite surface ENOSPC in different shapes, so the message is
// checked as well as the errno.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}

	var diskFullErr *DiskFullError
	if errors.As(err, &diskFullErr) || errors.Is(err, errors.ErrDiskFull) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ENOSPC {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range diskFullPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// WrapDiskFullError turns a disk full condition into a SystemError.
// Other errors are returned unchanged.
func WrapDiskFullError(err error, op, path string) error {
	if err == nil || !IsDiskFullError(err) {
		return err
	}
	var se *errors.SystemError
	if errors.As(err, &se) {
		return err
	}
	dfe := NewDiskFullError(op, path, err)
	return errors.NewSystemErrorWithOp(op, "disk full", dfe)
}
