package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/promptpack/internal/config"
	"github.com/user/promptpack/internal/errors"
	"github.com/user/promptpack/internal/export"
	"github.com/user/promptpack/internal/logging"
	"github.com/user/promptpack/internal/validation"
)

// ExportHandler converts a saved Markdown-format pack into a standalone
// HTML page or a structured JSON document.
type ExportHandler struct {
	*BaseHandler
	input  string
	output string
	format string
	stderr io.Writer
}

// NewExportHandler creates a new export handler
func NewExportHandler(cfg config.BaseConfig, input, output, format string, logger *logging.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler: &BaseHandler{Config: cfg, Logger: logger},
		input:       input,
		output:      output,
		format:      strings.ToLower(format),
		stderr:      os.Stderr,
	}
}

// SetStderr overrides the warning stream, for tests.
func (h *ExportHandler) SetStderr(w io.Writer) {
	h.stderr = w
}

// Handle executes the export operation
func (h *ExportHandler) Handle(ctx context.Context) error {
	if h.format != "html" && h.format != "json" {
		return errors.NewInvalidOptionError("format", h.format, "supported formats are html and json")
	}

	outputPath := h.output
	if outputPath == "" {
		outputPath = defaultExportPath(h.input, h.format)
	}

	h.warnOnSuspiciousInput()

	h.Logger.Info("exporting pack",
		logging.String("input", h.input),
		logging.String("output", outputPath),
		logging.String("format", h.format),
	)

	var err error
	switch h.format {
	case "html":
		var exp *export.HTMLExporter
		if exp, err = export.NewHTMLExporter(); err == nil {
			err = exp.ExportToHTML(h.input, outputPath)
		}
	case "json":
		var exp *export.JSONExporter
		if exp, err = export.NewJSONExporter(); err == nil {
			err = exp.ExportToJSON(h.input, outputPath)
		}
	}
	if err != nil {
		return errors.NewExportError(h.format, err)
	}

	h.Logger.Info("export complete", logging.String("output", outputPath))
	return nil
}

// warnOnSuspiciousInput flags inputs that do not look like saved packs.
// The export itself still runs; the exporters tolerate anything.
func (h *ExportHandler) warnOnSuspiciousInput() {
	data, err := os.ReadFile(h.input)
	if err != nil {
		return
	}

	if report := validation.CheckPack(string(data)); !report.LooksLikePack() {
		h.Logger.Warn("input does not look like a saved pack",
			logging.String("input", h.input),
			logging.String("detail", report.Summary()),
		)
		_, _ = fmt.Fprintf(h.stderr, "Warning: %s does not look like a saved pack: %s\n", h.input, report.Summary())
	}
}

// defaultExportPath swaps the pack's extension for the export format's.
func defaultExportPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if base == "" {
		base = input
	}
	return base + "." + format
}
