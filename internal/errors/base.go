package errors

import (
	"fmt"
)

// PackError is the base error type for all application errors
type PackError struct {
	Message  string        // Human-readable error message
	Context  *ErrorContext // Rich error context
	Cause    error         // Underlying error (for wrapping)
	ExitCode ExitCode      // Exit code for CLI
}

// UserFacing is satisfied by every error type in this package; the typed
// wrappers inherit it from their embedded *PackError. The CLI layer uses
// it to print the rich message and pick the process exit code.
type UserFacing interface {
	error
	GetUserMessage() string
	GetExitCode() ExitCode
}

// Error returns the error message with cause if present
func (e *PackError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *PackError) Unwrap() error {
	return e.Cause
}

// GetExitCode returns the process exit code for this error
func (e *PackError) GetExitCode() ExitCode {
	return e.ExitCode
}

// GetUserMessage returns a user-friendly error message with context
func (e *PackError) GetUserMessage() string {
	msg := fmt.Sprintf("ERROR: %s", e.Message)

	if e.Cause != nil {
		msg += fmt.Sprintf("\nCause: %v", e.Cause)
	}

	if e.Context != nil {
		msg += e.Context.Format()
	}

	return msg
}

// NewError creates a new PackError with the given message and exit code
func NewError(message string, exitCode ExitCode) *PackError {
	return &PackError{
		Message:  message,
		ExitCode: exitCode,
	}
}

// WrapError wraps an existing error with additional context
func WrapError(cause error, message string, exitCode ExitCode) *PackError {
	return &PackError{
		Message:  message,
		Cause:    cause,
		ExitCode: exitCode,
	}
}

// WrapErrorWithContext wraps an error with full context
func WrapErrorWithContext(cause error, message string, exitCode ExitCode, context *ErrorContext) *PackError {
	return &PackError{
		Message:  message,
		Context:  context,
		Cause:    cause,
		ExitCode: exitCode,
	}
}
