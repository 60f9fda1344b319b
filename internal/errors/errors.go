// Package errors provides the error taxonomy shared by the scaffolder and
// the barrel aggregator, plus the mapping from errors to process exit codes.
package errors

import (
	"errors"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a usage error: missing or reserved name,
	// non-directory aggregate target, invalid project rc file.
	ErrValidation = errors.New("validation error")

	// ErrDirectoryExists indicates the component directory is already present.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrAlreadyExists indicates the aggregate index file is already present.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrWriteFailure indicates a write failed after the component directory
	// was created. The directory may hold a partial file set.
	ErrWriteFailure = errors.New("write failure")

	// ErrNotFound indicates the aggregate target path does not exist.
	ErrNotFound = errors.New("not found")
)

// Exit codes.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitValidationError = 2
	ExitCollision       = 3
	ExitNotFound        = 4
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the path the error concerns (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "invalid usage",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewDirectoryExistsError reports a component directory collision.
func NewDirectoryExistsError(dir string) error {
	return &DetailError{
		Type:     "component exists",
		Message:  "a directory with this name is already present",
		Location: dir,
		Hint:     "remove it or pick another component name",
		Cause:    ErrDirectoryExists,
	}
}

// NewAlreadyExistsError reports an aggregate index file collision.
func NewAlreadyExistsError(path string) error {
	return &DetailError{
		Type:     "index exists",
		Message:  "an index file is already present and will not be overwritten",
		Location: path,
		Hint:     "delete it first to regenerate the index",
		Cause:    ErrAlreadyExists,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewWriteFailure wraps a filesystem failure that happened after the
// component directory was created. Both the sentinel and cause stay reachable
// through errors.Is.
func NewWriteFailure(dir string, cause error) error {
	return &DetailError{
		Type:     "write failed",
		Message:  cause.Error(),
		Location: dir,
		Hint:     "the directory may be incomplete; remove it before retrying",
		Cause:    errors.Join(ErrWriteFailure, cause),
	}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrDirectoryExists), errors.Is(err, ErrAlreadyExists):
		return ExitCollision
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitCollision:
		return "Collision"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
