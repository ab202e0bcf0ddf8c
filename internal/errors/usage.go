package errors

// UsageError is raised when the command line cannot be acted on, for
// example when no paths are given and none can be read from stdin
type UsageError struct {
	*PackError
}

// NewUsageError creates a new usage error
func NewUsageError(message string) *UsageError {
	return &UsageError{
		PackError: &PackError{
			Message:  message,
			ExitCode: ExitUsageError,
		},
	}
}
