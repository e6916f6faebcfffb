package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between exact counters.
	ExitErrorConfig   = 4   // Indicates a configuration or input error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrInvalidArgument is the sentinel behind every input validation failure.
// Callers test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Cause is the underlying error, if any. It is already part of Message.
	Cause error
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// Unwrap returns the cause, so a rejected flag value still matches
// ErrInvalidArgument.
func (e ConfigError) Unwrap() error { return e.Cause }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapConfigError creates a ConfigError whose message is the formatted
// context followed by err, and whose chain keeps err.
func WrapConfigError(err error, format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...) + ": " + err.Error(), Cause: err}
}

// CalculationError encapsulates a counting error while preserving the
// original cause.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a counter that did not finish before the deadline.
// It captures the operation name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap reports the timeout as a context deadline so IsContextError holds.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidArgument.
func (e ValidationError) Unwrap() error { return ErrInvalidArgument }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// LimitError reports that a counter was not run because the amount exceeds
// a caller-imposed ceiling for that counter.
type LimitError struct {
	// Operation is the name of the skipped counter.
	Operation string
	// Amount is the requested amount.
	Amount int
	// Limit is the configured ceiling.
	Limit int
}

// Error returns a formatted message describing the skipped run.
func (e LimitError) Error() string {
	return fmt.Sprintf("%s skipped: amount %d exceeds limit %d", e.Operation, e.Amount, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInvalidArgument reports whether err is an input validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// ColorProvider supplies the escape sequences used when printing errors.
// A nil ColorProvider prints without colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError prints a failed run and maps it to an exit code.
//
// Parameters:
//   - err: The error returned by the run. nil yields ExitSuccess.
//   - duration: How long the run took before failing (0 to omit).
//   - out: The writer for the message.
//   - colors: Optional color provider.
//
// Returns:
//   - int: The exit code for err.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}
	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s%s%s", yellow, duration, reset)
	}

	var timeoutErr TimeoutError
	var limitErr LimitError
	switch {
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The execution limit was reached%s.%s\n", red, suffix, reset)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", yellow, suffix, reset)
		return ExitErrorCanceled
	case errors.As(err, &limitErr):
		fmt.Fprintf(out, "%sStatus: Refused. %v%s\n", red, err, reset)
		return ExitErrorConfig
	case IsInvalidArgument(err):
		fmt.Fprintf(out, "%sStatus: Invalid input. %v%s\n", red, err, reset)
		return ExitErrorConfig
	default:
		fmt.Fprintf(out, "%sStatus: Failure. Unexpected error: %v%s\n", red, err, reset)
		return ExitErrorGeneric
	}
}
