package errors

import (
	"fmt"
)

// ConfigurationError is raised when configuration is invalid or missing
type ConfigurationError struct {
	*PackError
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{
		PackError: &PackError{
			Message:  message,
			ExitCode: ExitConfigError,
		},
	}
}

// ConfigFileError is raised when a configuration file cannot be read or parsed
type ConfigFileError struct {
	*PackError
}

// NewConfigFileError creates a new config file error
func NewConfigFileError(filePath string, cause error) *ConfigFileError {
	return &ConfigFileError{
		PackError: &PackError{
			Message: fmt.Sprintf("Failed to load configuration file: %s", filePath),
			Cause:   cause,
			Context: &ErrorContext{
				Operation: "Loading configuration",
				Component: "Config File",
				Details: map[string]interface{}{
					"file_path": filePath,
				},
				Suggestions: []string{
					"Check that the file exists and is readable",
					"Validate YAML syntax",
					"Check file permissions",
				},
			},
			ExitCode: ExitConfigError,
		},
	}
}

// InvalidOptionError is raised when a configuration value is out of range
type InvalidOptionError struct {
	*PackError
}

// NewInvalidOptionError creates a new invalid option error
func NewInvalidOptionError(option, value, reason string) *InvalidOptionError {
	return &InvalidOptionError{
		PackError: &PackError{
			Message: fmt.Sprintf("Option '%s' has an invalid value", option),
			Context: &ErrorContext{
				Operation: "Validating configuration",
				Component: "Options",
				Details: map[string]interface{}{
					"option": option,
					"value":  value,
					"reason": reason,
				},
				Suggestions: []string{
					fmt.Sprintf("Check the value of %s in .promptpack.yaml or on the command line", option),
					"Run 'promptpack config show' to inspect the effective configuration",
				},
			},
			ExitCode: ExitConfigError,
		},
	}
}
