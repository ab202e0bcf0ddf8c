package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/user/promptpack/internal/analysis"
	"github.com/user/promptpack/internal/config"
	"github.com/user/promptpack/internal/errors"
	"github.com/user/promptpack/internal/logging"
	"github.com/user/promptpack/internal/render"
	"github.com/user/promptpack/internal/selector"
	"github.com/user/promptpack/internal/session"
	"github.com/user/promptpack/internal/tui"
)

// FallbackOutputFile receives the pack when the clipboard is requested
// but unavailable, so a headless run never loses its output.
const FallbackOutputFile = "promptpack.txt"

// PackHandler runs the selection loop and writes the rendered pack to
// exactly one sink: a named file, the clipboard, or stdout.
type PackHandler struct {
	*BaseHandler
	config    config.PackConfig
	roots     []string
	confirmer *tui.Confirmer
	progress  *tui.SimpleProgress
	stdout    io.Writer
	stderr    io.Writer

	copyToClipboard func(string) error
}

// NewPackHandler creates a new pack handler
func NewPackHandler(cfg config.PackConfig, roots []string, logger *logging.Logger) *PackHandler {
	return &PackHandler{
		BaseHandler: &BaseHandler{
			Config: cfg.BaseConfig,
			Logger: logger,
		},
		config:          cfg,
		roots:           roots,
		confirmer:       tui.NewConfirmer(),
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		copyToClipboard: clipboard.WriteAll,
	}
}

// SetProgress attaches the non-verbose progress reporter.
func (h *PackHandler) SetProgress(p *tui.SimpleProgress) {
	h.progress = p
}

// SetStreams overrides the process streams, for tests.
func (h *PackHandler) SetStreams(stdout, stderr io.Writer, stdin io.Reader) {
	h.stdout = stdout
	h.stderr = stderr
	h.confirmer.SetStreams(stdin, stderr)
}

// Handle executes the pack operation
func (h *PackHandler) Handle(ctx context.Context) error {
	baseDir, err := filepath.Abs(h.config.Root)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("cannot resolve root directory: %v", err))
	}

	selCfg := selector.Config{
		Include:       h.config.Selection.Include,
		Exclude:       h.config.Selection.Exclude,
		UseGitignore:  !h.config.Selection.NoGitignore,
		BinaryFilter:  !h.config.Selection.IncludeBinary,
		ExtensionOnly: h.config.Selection.GetBinaryDetection() == "extension",
		BaseDir:       baseDir,
		LossyDecode:   !h.config.Selection.StrictDecode,
		SkipVCS:       !h.config.Selection.KeepVCS,
		Warn: func(msg string) {
			_, _ = fmt.Fprintln(h.stderr, msg)
		},
		Logger: h.Logger,
	}

	sess := session.New(session.Config{
		Selector: selCfg,
		Roots:    h.roots,
		Confirm:  h.confirmExclusions,
	}, h.Logger)

	result, err := sess.Run(ctx)
	if err != nil {
		return err
	}

	if result.State == session.StateEmpty {
		_, _ = fmt.Fprintln(h.stderr, "No files found matching the criteria.")
		return nil
	}

	output := h.renderPack(result.Files, baseDir)

	h.Logger.Info("pack assembled",
		logging.Int("files", len(result.Files)),
		logging.Int("bytes", len(output)),
		logging.Int("est_tokens", len(output)/4),
		logging.Int("iterations", result.Iterations),
	)

	if err := h.writeOutput(output); err != nil {
		return err
	}

	if h.progress != nil {
		h.progress.Success(fmt.Sprintf("Packed %d files (~%d tokens)", len(result.Files), len(output)/4))
	}

	return nil
}

// confirmExclusions presents the offending paths and reports the
// operator's decision back to the session loop.
func (h *PackHandler) confirmExclusions(offenders []analysis.Contributor) bool {
	items := make([]string, len(offenders))
	for i, o := range offenders {
		items[i] = o.Path
	}

	if h.confirmer.ConfirmLargeItems(items) {
		_, _ = fmt.Fprintln(h.stderr, "Regenerating output with new exclusions...")
		return true
	}

	_, _ = fmt.Fprintln(h.stderr, "Proceeding with the original file selection.")
	return false
}

func (h *PackHandler) renderPack(files []selector.File, baseDir string) string {
	docs := make([]render.Document, len(files))
	for i, f := range files {
		docs[i] = render.Document{
			Path:    displayPath(baseDir, f.Path),
			Content: f.Content,
		}
	}
	return render.Output(docs, filepath.Base(baseDir), render.Format(h.config.Output.GetFormat()))
}

// displayPath resolves a selected file relative to the pack root. Files
// outside the root keep their absolute path rather than climbing with
// ".." segments.
func displayPath(baseDir, path string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// writeOutput delivers the rendered pack to exactly one sink.
func (h *PackHandler) writeOutput(output string) error {
	switch {
	case h.config.Output.File != "":
		if err := os.WriteFile(h.config.Output.File, []byte(output), 0644); err != nil {
			return errors.NewOutputError(h.config.Output.File, err)
		}
		return nil

	case h.config.Output.Copy:
		if err := h.copyToClipboard(output); err != nil {
			h.Logger.Warn("clipboard unavailable", logging.Error(err))
			if h.progress != nil {
				h.progress.Warning(fmt.Sprintf("Clipboard unavailable: %v", err))
			} else {
				_, _ = fmt.Fprintf(h.stderr, "Warning: Clipboard unavailable: %v\n", err)
			}
			if werr := os.WriteFile(FallbackOutputFile, []byte(output), 0644); werr != nil {
				return errors.NewOutputError(FallbackOutputFile, werr)
			}
			_, _ = fmt.Fprintf(h.stderr, "Output written to %s.\n", FallbackOutputFile)
			return nil
		}
		_, _ = fmt.Fprintln(h.stderr, "Output copied to clipboard.")
		return nil

	default:
		_, _ = fmt.Fprintln(h.stdout, output)
		return nil
	}
}
