package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/promptpack/internal/config"
	appErrors "github.com/user/promptpack/internal/errors"
	"github.com/user/promptpack/internal/tui"
)

// TestInitLogger_DefaultLogDir tests that the log directory is anchored at the pack root
func TestInitLogger_DefaultLogDir(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &config.PackConfig{BaseConfig: config.BaseConfig{Root: tmpDir}}

	logger, err := InitLogger(cfg, false, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer logger.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, ".promptpack", "logs")); os.IsNotExist(err) {
		t.Error("Expected .promptpack/logs directory to be created under the root")
	}
}

// TestInitLogger_AbsoluteLogDir tests that an absolute log_dir is used as-is
func TestInitLogger_AbsoluteLogDir(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.PackConfig{
		BaseConfig: config.BaseConfig{Root: "."},
		Logging:    config.LoggingConfig{LogDir: logDir},
	}

	logger, err := InitLogger(cfg, false, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer logger.Sync()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Expected %s directory to be created", logDir)
	}
}

// TestInitLogger_FlagCombinations tests various combinations of debug and verbose
func TestInitLogger_FlagCombinations(t *testing.T) {
	testCases := []struct {
		name    string
		debug   bool
		verbose bool
	}{
		{"debug=false,verbose=false", false, false},
		{"debug=false,verbose=true", false, true},
		{"debug=true,verbose=false", true, false},
		{"debug=true,verbose=true", true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.PackConfig{BaseConfig: config.BaseConfig{Root: t.TempDir()}}

			logger, err := InitLogger(cfg, tc.debug, tc.verbose)
			if err != nil {
				t.Fatalf("Expected no error for %s, got %v", tc.name, err)
			}
			defer logger.Sync()

			if logger == nil {
				t.Errorf("Expected logger to be created for %s", tc.name)
			}
		})
	}
}

// TestHandleCommandError_NilError tests that nil error returns nil
func TestHandleCommandError_NilError(t *testing.T) {
	result := HandleCommandError(nil, nil, false)
	if result != nil {
		t.Errorf("Expected nil, got %v", result)
	}
}

// TestHandleCommandError_NilErrorWithProgress tests nil error with progress
func TestHandleCommandError_NilErrorWithProgress(t *testing.T) {
	progress := tui.NewSimpleProgress("Test")
	result := HandleCommandError(nil, progress, true)
	if result != nil {
		t.Errorf("Expected nil, got %v", result)
	}
}

// TestHandleCommandError_PackError_WithProgress tests a typed error with progress UI
func TestHandleCommandError_PackError_WithProgress(t *testing.T) {
	packErr := appErrors.NewError("user-facing error", appErrors.ExitGeneralError)
	progress := tui.NewSimpleProgress("Test")

	result := HandleCommandError(packErr, progress, true)

	if result != packErr {
		t.Errorf("Expected same error to be returned, got %v", result)
	}
}

// TestHandleCommandError_TypedWrapperKeepsExitCode tests that the typed
// wrappers still expose their exit code after passing through
func TestHandleCommandError_TypedWrapperKeepsExitCode(t *testing.T) {
	usageErr := appErrors.NewUsageError("no paths provided")

	result := HandleCommandError(usageErr, nil, false)
	if result == nil {
		t.Fatal("Expected the error to be returned")
	}

	var uerr appErrors.UserFacing
	if !errors.As(result, &uerr) {
		t.Fatalf("Expected a UserFacing error, got %T", result)
	}
	if uerr.GetExitCode() != appErrors.ExitUsageError {
		t.Errorf("Expected exit code %d, got %d", appErrors.ExitUsageError, uerr.GetExitCode())
	}
	if !strings.Contains(uerr.GetUserMessage(), "no paths provided") {
		t.Errorf("Expected user message to carry the reason, got %q", uerr.GetUserMessage())
	}
}

// TestHandleCommandError_RegularError_NoProgress tests regular error without progress UI
func TestHandleCommandError_RegularError_NoProgress(t *testing.T) {
	regularErr := errors.New("regular error")

	result := HandleCommandError(regularErr, nil, false)

	if result != regularErr {
		t.Errorf("Expected same error to be returned, got %v", result)
	}
}

// TestHandleCommandError_RegularError_WithProgress tests regular error with progress UI
func TestHandleCommandError_RegularError_WithProgress(t *testing.T) {
	regularErr := errors.New("regular error with progress")
	progress := tui.NewSimpleProgress("Test")

	result := HandleCommandError(regularErr, progress, true)

	if result != regularErr {
		t.Errorf("Expected same error to be returned, got %v", result)
	}
}

// TestHandleCommandError_ShowProgressTrue_WithNilProgress tests showProgress=true with nil progress
func TestHandleCommandError_ShowProgressTrue_WithNilProgress(t *testing.T) {
	regularErr := errors.New("some error")

	result := HandleCommandError(regularErr, nil, true)

	if result != regularErr {
		t.Errorf("Expected same error to be returned, got %v", result)
	}
}
