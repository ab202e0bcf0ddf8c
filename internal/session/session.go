// Package session drives the iterative selection loop: select files,
// analyze their size contributions, and optionally fold the offenders
// back into the exclude set and re-run until the output is balanced or
// the operator accepts it as is.
package session

import (
	"context"
	"path/filepath"

	"github.com/user/promptpack/internal/analysis"
	"github.com/user/promptpack/internal/logging"
	"github.com/user/promptpack/internal/selector"
)

// State names the terminal outcome of a session run.
type State string

const (
	// StateDone means a non-empty selection was accepted, either because
	// no large contributors remained or the operator declined to exclude
	// them.
	StateDone State = "done"
	// StateEmpty means the selection produced no files. This is a normal
	// outcome, not an error.
	StateEmpty State = "empty"
)

// Config configures a session. Selector is the base selector
// configuration; its Exclude slice is the starting exclude set and is
// never mutated. Confirm decides whether reported contributors should be
// excluded and the run repeated; a nil Confirm declines everything.
type Config struct {
	Selector selector.Config
	Roots    []string
	Confirm  func([]analysis.Contributor) bool
}

// Result is the final selection after the loop terminates.
type Result struct {
	Files      []selector.File
	Excludes   []string
	Iterations int
	State      State
}

// Session owns one selection loop.
type Session struct {
	cfg    Config
	logger *logging.Logger
}

// New builds a session.
func New(cfg Config, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Session{cfg: cfg, logger: logger}
}

// Run executes the loop until it reaches a terminal state or ctx is
// canceled between iterations. Each confirmed round derives a strictly
// larger exclude set, and each excluded offender removes at least one
// selected file, so the loop always terminates.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	excludes := s.cfg.Selector.Exclude
	iterations := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		cfg := s.cfg.Selector
		cfg.Exclude = excludes
		files, err := selector.New(cfg).Select(s.cfg.Roots)
		if err != nil {
			return nil, err
		}

		if len(files) == 0 {
			s.logger.Info("selection empty", logging.Int("iteration", iterations))
			return &Result{Excludes: excludes, Iterations: iterations, State: StateEmpty}, nil
		}

		contents := make(map[string]string, len(files))
		for _, f := range files {
			contents[f.Path] = f.Content
		}
		root := commonRoot(files)
		offenders := analysis.FindLargeContributors(contents, root)

		if len(offenders) == 0 {
			return &Result{Files: files, Excludes: excludes, Iterations: iterations, State: StateDone}, nil
		}

		s.logger.Info("large contributors found",
			logging.Int("count", len(offenders)),
			logging.Int("iteration", iterations))

		if s.cfg.Confirm == nil || !s.cfg.Confirm(offenders) {
			return &Result{Files: files, Excludes: excludes, Iterations: iterations, State: StateDone}, nil
		}

		excludes = s.withOffenders(excludes, offenders, root)
	}
}

// withOffenders derives a new exclude slice: directories as recursive
// patterns, files as their exact relative path. Offender paths are
// relative to the selection's common root, so they are rebased onto the
// selector's BaseDir anchor before becoming patterns; otherwise a folded
// pattern could fail to match the very files it came from. The input
// slice is left untouched.
func (s *Session) withOffenders(excludes []string, offenders []analysis.Contributor, commonRoot string) []string {
	base := s.cfg.Selector.BaseDir
	if base == "" {
		base = "."
	}
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}

	grown := make([]string, 0, len(excludes)+len(offenders))
	grown = append(grown, excludes...)
	for _, o := range offenders {
		path := o.Path
		if rel, err := filepath.Rel(base, filepath.Join(commonRoot, filepath.FromSlash(o.Path))); err == nil {
			path = filepath.ToSlash(rel)
		}
		if o.IsDir {
			grown = append(grown, path+"/**")
		} else {
			grown = append(grown, path)
		}
	}
	return grown
}

// commonRoot finds the deepest directory containing every selected file.
// With a single file that is its parent directory.
func commonRoot(files []selector.File) string {
	if len(files) == 0 {
		return ""
	}
	root := filepath.Dir(files[0].Path)
	for _, f := range files[1:] {
		dir := filepath.Dir(f.Path)
		for !isUnder(root, dir) {
			next := filepath.Dir(root)
			if next == root {
				break
			}
			root = next
		}
	}
	return root
}

// isUnder reports whether path is root or a descendant of it.
func isUnder(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !filepath.IsAbs(rel) && !hasDotDotPrefix(rel))
}

func hasDotDotPrefix(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
