// Package selector walks a set of filesystem roots and produces the sorted
// list of text files that survive ignore rules, explicit include/exclude
// patterns, and binary detection. It is the selection half of the pack
// pipeline; rendering happens elsewhere.
package selector

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/user/promptpack/internal/binary"
	"github.com/user/promptpack/internal/gitignore"
	"github.com/user/promptpack/internal/logging"
)

// File is a selected file: absolute path plus decoded text content.
type File struct {
	Path    string
	Content string
}

// Config controls one selector. Include and Exclude are gitignore-style
// pattern sets matched against paths relative to BaseDir.
type Config struct {
	Include       []string
	Exclude       []string
	UseGitignore  bool
	BinaryFilter  bool
	ExtensionOnly bool
	BaseDir       string
	LossyDecode   bool
	SkipVCS       bool
	Warn          func(msg string)
	Logger        *logging.Logger
}

// Selector selects files according to its Config. Construct with New;
// a Selector is not safe for concurrent use.
type Selector struct {
	cfg        Config
	exclude    *gitignore.Matcher
	include    *gitignore.Matcher
	classifier *binary.Classifier
	logger     *logging.Logger
}

// vcsDirs are version-control metadata directories pruned when SkipVCS
// is set, independent of any ignore file.
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// New builds a Selector from cfg.
func New(cfg Config) *Selector {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	mode := binary.ModeContent
	if cfg.ExtensionOnly {
		mode = binary.ModeExtension
	}

	s := &Selector{
		cfg:        cfg,
		exclude:    gitignore.ParseLines(cfg.Exclude),
		classifier: binary.NewClassifier(mode),
		logger:     logger,
	}
	if len(cfg.Include) > 0 {
		s.include = gitignore.ParseLines(cfg.Include)
	}
	return s
}

// Select resolves each root and collects the surviving files. Roots that
// cannot be resolved are warned about and skipped; a failure on one root
// never aborts the others. The result is deduplicated across overlapping
// roots and sorted by absolute path.
func (s *Selector) Select(roots []string) ([]File, error) {
	baseDir := s.cfg.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	var cache *gitignore.RuleCache
	if s.cfg.UseGitignore {
		cache = gitignore.NewRuleCache()
	}

	seen := make(map[string]bool)
	var files []File

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			s.warnSkip(root, err)
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			s.warnSkip(root, err)
			continue
		}

		if info.IsDir() {
			s.walkRoot(abs, base, cache, seen, &files)
		} else {
			// An explicit file root skips traversal but not filtering.
			s.considerFile(abs, filepath.Dir(abs), base, cache, seen, &files)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	s.logger.Debug("selection finished",
		logging.Int("roots", len(roots)),
		logging.Int("files", len(files)))
	return files, nil
}

// walkRoot traverses one directory root in pre-order, pruning excluded
// and ignored directories before descending into them.
func (s *Selector) walkRoot(root, base string, cache *gitignore.RuleCache, seen map[string]bool, out *[]File) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.warnSkip(path, err)
			return nil
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if s.cfg.SkipVCS && vcsDirs[d.Name()] {
				return fs.SkipDir
			}
			if s.dirExcluded(path, root, base, cache) {
				return fs.SkipDir
			}
			return nil
		}

		s.considerFile(path, root, base, cache, seen, out)
		return nil
	})
}

// dirExcluded decides whether to prune a directory: an exclude-pattern
// match on the base-relative path, or a matching ignore rule at any level
// between the scope root and the directory.
func (s *Selector) dirExcluded(path, scope, base string, cache *gitignore.RuleCache) bool {
	if s.exclude.Matches(relativeSlash(base, path), true) {
		return true
	}
	return cache != nil && ignoredAt(cache, scope, path, true)
}

// considerFile runs the full filter chain on one file and appends it to
// out when it survives. The include set gates files only; directories are
// never pruned for failing it.
func (s *Selector) considerFile(path, scope, base string, cache *gitignore.RuleCache, seen map[string]bool, out *[]File) {
	if seen[path] {
		return
	}
	rel := relativeSlash(base, path)
	if s.exclude.Matches(rel, false) {
		return
	}
	if cache != nil && ignoredAt(cache, scope, path, false) {
		return
	}
	if s.include != nil && !s.include.Matches(rel, false) {
		return
	}
	if s.cfg.BinaryFilter && s.classifier.Classify(path) {
		s.logger.Debug("binary file skipped", logging.String("path", path))
		return
	}

	content, ok := s.readText(path)
	if !ok {
		return
	}
	seen[path] = true
	*out = append(*out, File{Path: path, Content: content})
}

// readText reads and decodes one file. Invalid UTF-8 is dropped byte by
// byte under LossyDecode; otherwise the file is skipped with a warning.
func (s *Selector) readText(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.warnSkip(path, err)
		return "", false
	}
	if utf8.Valid(data) {
		return string(data), true
	}
	if s.cfg.LossyDecode {
		return string(bytes.ToValidUTF8(data, nil)), true
	}
	s.warnSkip(path, errors.New("invalid UTF-8"))
	return "", false
}

// warnSkip reports a skipped path on the warn callback and the log.
func (s *Selector) warnSkip(path string, err error) {
	if s.cfg.Warn != nil {
		s.cfg.Warn(fmt.Sprintf("Warning: Skipping file %s due to error: %v", path, err))
	}
	s.logger.Warn("skipping path", logging.String("path", path), logging.Error(err))
}

// ignoredAt checks path against the ignore rules of every directory from
// scope down to its parent, each evaluated relative to its own directory.
// A match at any level ignores the path.
func ignoredAt(cache *gitignore.RuleCache, scope, path string, isDir bool) bool {
	rel, err := filepath.Rel(scope, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	segs := strings.Split(filepath.ToSlash(rel), "/")

	dir := scope
	for i := 0; i < len(segs); i++ {
		if m := cache.Load(dir); m != nil {
			if m.Matches(strings.Join(segs[i:], "/"), isDir) {
				return true
			}
		}
		dir = filepath.Join(dir, segs[i])
	}
	return false
}

// relativeSlash makes path relative to base with forward slashes, falling
// back to the path itself when it cannot be made relative.
func relativeSlash(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
