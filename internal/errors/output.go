package errors

import (
	"fmt"
)

// OutputError is raised when the rendered output cannot be delivered to
// its sink (file, clipboard fallback, or stdout)
type OutputError struct {
	*PackError
}

// NewOutputError creates a new output error
func NewOutputError(target string, cause error) *OutputError {
	return &OutputError{
		PackError: &PackError{
			Message: fmt.Sprintf("Failed to write output to %s", target),
			Cause:   cause,
			Context: &ErrorContext{
				Operation: "Writing output",
				Component: "Output Sink",
				Details: map[string]interface{}{
					"target": target,
				},
				Suggestions: []string{
					"Check that the target directory exists and is writable",
					"Check free disk space",
				},
			},
			ExitCode: ExitOutputError,
		},
	}
}

// ExportError is raised when converting the packed output to another
// document format fails
type ExportError struct {
	*PackError
}

// NewExportError creates a new export error
func NewExportError(format string, cause error) *ExportError {
	return &ExportError{
		PackError: &PackError{
			Message: fmt.Sprintf("Failed to export %s document", format),
			Cause:   cause,
			Context: &ErrorContext{
				Operation: "Document Export",
				Component: "Exporter",
				Details: map[string]interface{}{
					"format": format,
				},
				Suggestions: []string{
					"Check that the source file exists and is readable",
					"Verify the output directory is writable",
				},
			},
			ExitCode: ExitExportError,
		},
	}
}
