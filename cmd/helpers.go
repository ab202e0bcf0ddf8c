package cmd

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/user/promptpack/internal/config"
	"github.com/user/promptpack/internal/errors"
	"github.com/user/promptpack/internal/logging"
	"github.com/user/promptpack/internal/tui"
)

// InitLogger creates the configured logger for CLI commands.
//
// The log directory comes from the merged configuration and is anchored
// at the pack root when relative. Verbose mode turns the console sink on
// (and the progress UI off); debug adds caller information. The caller
// is responsible for logger.Sync() when done.
func InitLogger(cfg *config.PackConfig, debug, verbose bool) (*logging.Logger, error) {
	logDir := cfg.Logging.GetLogDir()
	if !filepath.IsAbs(logDir) {
		logDir = filepath.Join(cfg.Root, logDir)
	}

	logCfg := &logging.Config{
		LogDir:         logDir,
		FileLevel:      logging.LevelFromString(cfg.Logging.GetFileLevel()),
		ConsoleLevel:   logging.LevelFromString(cfg.Logging.GetConsoleLevel()),
		EnableCaller:   debug,
		ConsoleEnabled: verbose,
	}

	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// HandleCommandError routes a command error through the progress UI when
// one is active and hands it back for exit-code mapping in Execute.
// Returns the original error unchanged (allows chaining: return HandleCommandError(...))
func HandleCommandError(err error, progress *tui.SimpleProgress, showProgress bool) error {
	if err == nil {
		return nil
	}

	var uerr errors.UserFacing
	if stderrors.As(err, &uerr) {
		if showProgress && progress != nil {
			progress.Error(uerr.GetUserMessage())
			progress.Failed(nil)
		}
		return err
	}

	if showProgress && progress != nil {
		progress.Failed(err)
	}
	return err
}
