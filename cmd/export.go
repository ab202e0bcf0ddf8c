package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user/promptpack/internal/config"
	"github.com/user/promptpack/internal/handlers"
	"github.com/user/promptpack/internal/tui"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export PACK",
	Short: "Convert a saved Markdown pack to HTML or JSON",
	Long: `Convert a pack saved in Markdown format into a standalone document.

Supported formats:
  - html: Standalone HTML file with embedded CSS and syntax highlighting
  - json: Structured JSON with metadata and per-file content

Examples:
  # Pack in Markdown format, then export as a shareable page
  promptpack -m -o pack.md
  promptpack export pack.md --format html

  # Structured JSON next to the pack (pack.json)
  promptpack export pack.md --format json

  # Explicit output path
  promptpack export pack.md --format html --output review.html`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "html", "Export format (html, json)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output file path (default: input with the format's extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := config.LoadPackConfig(".", map[string]interface{}{
		"debug": debugFlag,
	})
	if err != nil {
		return err
	}

	logger, err := InitLogger(cfg, debugFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	showProgress := !verboseFlag
	var progress *tui.SimpleProgress
	if showProgress {
		progress = tui.NewSimpleProgress("promptpack Export")
		progress.Start()
		progress.Step(fmt.Sprintf("Exporting %s...", filepath.Base(input)))
	}

	handler := handlers.NewExportHandler(cfg.BaseConfig, input, exportOutput, exportFormat, logger)

	if err := handler.Handle(cmd.Context()); err != nil {
		return HandleCommandError(err, progress, showProgress)
	}

	if showProgress {
		progress.Success("Export complete")
		progress.Done()
	} else {
		logger.Info("Export complete")
	}

	return nil
}
