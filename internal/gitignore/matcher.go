// Package gitignore implements gitignore-style pattern matching: ordered
// rule sets with last-match-wins evaluation, and a lazy per-directory cache
// of parsed ignore files.
package gitignore

import (
	"strings"
)

// Matcher evaluates an ordered set of ignore rules against relative paths.
// The zero value matches nothing.
type Matcher struct {
	rules []rule
}

// Matches reports whether path is matched by the rule set. Rules are
// evaluated in order and the last rule that matches decides the outcome, so
// a later negated rule un-matches an earlier match. Paths are always
// relative to the directory the rules were declared in, using either slash
// style; isDir must be true when the path names a directory, which is what
// allows trailing-slash rules to apply.
func (m *Matcher) Matches(path string, isDir bool) bool {
	if m == nil || len(m.rules) == 0 {
		return false
	}
	segs := splitPath(path)
	if len(segs) == 0 {
		return false
	}
	matched := false
	for i := range m.rules {
		if m.rules[i].match(segs, isDir) {
			matched = !m.rules[i].negate
		}
	}
	return matched
}

// Len returns the number of compiled rules.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// Empty reports whether the matcher holds no rules.
func (m *Matcher) Empty() bool {
	return m.Len() == 0
}

// splitPath normalizes a relative path to forward-slash segments.
func splitPath(path string) []string {
	p := strings.ReplaceAll(path, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		return nil
	}
	segs := strings.Split(p, "/")
	out := segs[:0]
	for _, s := range segs {
		if s == "" || s == "." {
			continue
		}
		out = append(out, s)
	}
	return out
}
