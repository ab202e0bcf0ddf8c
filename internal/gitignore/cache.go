package gitignore

import (
	"os"
	"path/filepath"
)

// IgnoreFileName is the per-directory ignore file consulted during traversal.
const IgnoreFileName = ".gitignore"

// RuleCache lazily loads and caches one Matcher per directory. Absence of an
// ignore file (or a file that cannot be read) is cached as nil so repeated
// lookups cost a single map access. A cache instance is scoped to one
// selection pass; directories are never re-read once loaded.
type RuleCache struct {
	matchers map[string]*Matcher
}

// NewRuleCache returns an empty cache.
func NewRuleCache() *RuleCache {
	return &RuleCache{matchers: make(map[string]*Matcher)}
}

// Load returns the matcher for the ignore file directly inside dir, or nil
// when the directory has no usable rules. The first call reads the file;
// later calls return the cached result.
func (c *RuleCache) Load(dir string) *Matcher {
	if m, ok := c.matchers[dir]; ok {
		return m
	}

	var m *Matcher
	f, err := os.Open(filepath.Join(dir, IgnoreFileName))
	if err == nil {
		parsed, perr := ParseReader(f)
		_ = f.Close()
		if perr == nil && !parsed.Empty() {
			m = parsed
		}
	}

	c.matchers[dir] = m
	return m
}
