package cmd

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/user/promptpack/internal/config"
	"github.com/user/promptpack/internal/errors"
	"github.com/user/promptpack/internal/handlers"
	"github.com/user/promptpack/internal/logging"
	"github.com/user/promptpack/internal/tui"
)

var (
	debugFlag   bool
	verboseFlag bool

	includeFlags        []string
	excludeFlags        []string
	noGitignoreFlag     bool
	includeBinaryFlag   bool
	binaryDetectionFlag string
	outputFlag          string
	cxmlFlag            bool
	markdownFlag        bool
	copyFlag            bool
	rootFlag            string
	strictDecodeFlag    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptpack [paths...]",
	Short: "Pack source files into one LLM-ready document",
	Long: `Concatenate selected source files into a single document with a project
tree header and numbered lines, ready to paste into an LLM prompt.

Paths default to the current directory. When stdin is piped and no paths
are given, newline-separated paths are read from stdin.

Examples:
  # Pack the current directory to stdout
  promptpack

  # Pack two directories into a file, Markdown format
  promptpack src docs -m -o pack.md

  # Only Go sources, straight to the clipboard
  promptpack -i "*.go" -C

  # Feed paths from another tool
  git ls-files '*.go' | promptpack`,
	Version:       "1.0.0",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPack,
}

// Execute runs the root command and maps application errors to their
// process exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var uerr errors.UserFacing
		if stderrors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.GetUserMessage())
			os.Exit(uerr.GetExitCode().Int())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitGeneralError.Int())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show detailed log output instead of progress UI")

	addPackFlags(rootCmd)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewUsageError(err.Error())
	})
}

// addPackFlags binds the selection and output flags. Their values reach
// the handler through the configuration overrides, never directly.
func addPackFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVarP(&includeFlags, "include", "i", nil, "Include only paths matching this gitignore-style pattern (repeatable)")
	f.StringArrayVarP(&excludeFlags, "exclude", "x", nil, "Exclude paths matching this gitignore-style pattern (repeatable)")
	f.BoolVar(&noGitignoreFlag, "no-gitignore", false, "Ignore .gitignore files during selection")
	f.BoolVar(&includeBinaryFlag, "include-binary", false, "Keep files detected as binary")
	f.StringVar(&binaryDetectionFlag, "binary-detection", "", "Binary detection strategy: content or extension (default content)")
	f.StringVarP(&outputFlag, "output", "o", "", "Write the pack to this file instead of stdout")
	f.BoolVarP(&cxmlFlag, "cxml", "c", false, "Render XML document blocks for Claude prompts")
	f.BoolVarP(&markdownFlag, "markdown", "m", false, "Render fenced Markdown code blocks")
	f.BoolVarP(&copyFlag, "copy", "C", false, "Copy the pack to the system clipboard")
	f.StringVar(&rootFlag, "root", ".", "Project base directory for pattern matching and relative paths")
	f.BoolVar(&strictDecodeFlag, "strict-decode", false, "Skip files with invalid UTF-8 instead of dropping bad bytes")

	cmd.MarkFlagsMutuallyExclusive("cxml", "markdown")
	cmd.MarkFlagsMutuallyExclusive("output", "copy")
}

func runPack(cmd *cobra.Command, args []string) error {
	roots, err := resolvePaths(args, os.Stdin)
	if err != nil {
		return err
	}

	cfg, err := config.LoadPackConfig(rootFlag, packOverrides(cmd))
	if err != nil {
		return err
	}

	logger, err := InitLogger(cfg, debugFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	showProgress := !verboseFlag
	logger.Info("Starting pack",
		logging.String("root", cfg.Root),
		logging.Strings("paths", roots),
		logging.String("format", cfg.Output.GetFormat()),
	)

	var progress *tui.SimpleProgress
	if showProgress {
		progress = tui.NewSimpleProgress("promptpack")
		progress.Start()
		progress.Step("Selecting files...")
	}

	handler := handlers.NewPackHandler(*cfg, roots, logger)
	handler.SetProgress(progress)

	if err := handler.Handle(cmd.Context()); err != nil {
		return HandleCommandError(err, progress, showProgress)
	}

	if showProgress {
		progress.Done()
	} else {
		logger.Info("Pack complete")
	}

	return nil
}

// packOverrides maps changed CLI flags onto configuration keys. Flags the
// user did not touch are left out so file and environment values survive.
func packOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()

	if flags.Changed("root") {
		overrides["root"] = rootFlag
	}
	if debugFlag {
		overrides["debug"] = true
	}
	if flags.Changed("include") {
		overrides["selection.include"] = includeFlags
	}
	if flags.Changed("exclude") {
		overrides["selection.exclude"] = excludeFlags
	}
	if flags.Changed("no-gitignore") {
		overrides["selection.no_gitignore"] = noGitignoreFlag
	}
	if flags.Changed("include-binary") {
		overrides["selection.include_binary"] = includeBinaryFlag
	}
	if flags.Changed("binary-detection") {
		overrides["selection.binary_detection"] = binaryDetectionFlag
	}
	if flags.Changed("strict-decode") {
		overrides["selection.strict_decode"] = strictDecodeFlag
	}
	if flags.Changed("output") {
		overrides["output.file"] = outputFlag
	}
	if flags.Changed("copy") {
		overrides["output.copy"] = copyFlag
	}
	if flags.Changed("cxml") {
		overrides["output.format"] = "cxml"
	}
	if flags.Changed("markdown") {
		overrides["output.format"] = "markdown"
	}

	return overrides
}

// resolvePaths determines the pack roots: explicit arguments win; with a
// terminal stdin the current directory is packed; a piped stdin supplies
// newline-separated paths, blank lines skipped.
func resolvePaths(args []string, stdin *os.File) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if term.IsTerminal(int(stdin.Fd())) {
		return []string{"."}, nil
	}

	paths, err := readPathLines(stdin)
	if err != nil {
		return nil, errors.NewUsageError(fmt.Sprintf("Failed to read paths from stdin: %v", err))
	}
	if len(paths) == 0 {
		return nil, errors.NewUsageError("No paths provided: pass paths as arguments or pipe them on stdin")
	}
	return paths, nil
}

func readPathLines(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, scanner.Err()
}
