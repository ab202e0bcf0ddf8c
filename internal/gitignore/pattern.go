package gitignore

import (
	"strings"
)

// rule is a single compiled ignore pattern.
type rule struct {
	pattern string
	segs    []string
	negate  bool
	dirOnly bool
}

// compileRule turns a raw pattern (already stripped of comment/negation
// markers) into a matchable rule. Returns false for patterns that cannot
// match anything, such as "/" or an empty string.
func compileRule(pattern string, negate bool) (rule, bool) {
	p := pattern

	dirOnly := false
	if strings.HasSuffix(p, "/") {
		dirOnly = true
		p = strings.TrimSuffix(p, "/")
	}

	// A pattern containing a slash is anchored to the directory of its
	// ignore file; anything else matches at every depth below it.
	anchored := false
	if strings.HasPrefix(p, "/") {
		anchored = true
		p = strings.TrimPrefix(p, "/")
	} else if strings.Contains(p, "/") {
		anchored = true
	}
	if p == "" {
		return rule{}, false
	}

	parts := strings.Split(p, "/")
	segs := make([]string, 0, len(parts)+1)
	if !anchored {
		segs = append(segs, "**")
	}
	for _, s := range parts {
		if s == "" {
			continue
		}
		if s == "**" {
			if len(segs) > 0 && segs[len(segs)-1] == "**" {
				continue
			}
			segs = append(segs, s)
			continue
		}
		segs = append(segs, collapseDoubleStar(s))
	}
	if len(segs) == 0 {
		return rule{}, false
	}

	return rule{pattern: pattern, segs: segs, negate: negate, dirOnly: dirOnly}, true
}

// collapseDoubleStar reduces "**" inside a single segment to "*", since the
// cross-segment form is only meaningful as a whole segment.
func collapseDoubleStar(seg string) string {
	for strings.Contains(seg, "**") {
		seg = strings.ReplaceAll(seg, "**", "*")
	}
	return seg
}

// match reports whether the rule matches the path split into segments.
// A rule matching a directory also matches every path beneath it.
func (r *rule) match(segs []string, isDir bool) bool {
	if matchSegs(r.segs, segs) && (!r.dirOnly || isDir) {
		return true
	}
	// If the pattern matches a proper prefix of the path, that prefix is a
	// directory containing the path, so the path is covered too.
	for k := 1; k < len(segs); k++ {
		if matchSegs(r.segs, segs[:k]) {
			return true
		}
	}
	return false
}

// matchSegs matches a compiled pattern against path segments. A "**" segment
// consumes zero or more path segments.
func matchSegs(pat, segs []string) bool {
	if len(pat) == 0 {
		return len(segs) == 0
	}
	if pat[0] == "**" {
		if matchSegs(pat[1:], segs) {
			return true
		}
		if len(segs) > 0 {
			return matchSegs(pat, segs[1:])
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	if !matchSegment(pat[0], segs[0]) {
		return false
	}
	return matchSegs(pat[1:], segs[1:])
}

// matchSegment matches one glob segment against one path segment. Supports
// "*", "?", "[...]" classes and backslash escapes; "*" never crosses a
// separator because segments are split beforehand.
func matchSegment(pat, name string) bool {
	var pi, ni int
	starPi, starNi := -1, 0

	for ni < len(name) {
		if pi < len(pat) {
			switch pat[pi] {
			case '*':
				starPi, starNi = pi, ni
				pi++
				continue
			case '?':
				pi++
				ni++
				continue
			case '[':
				if ok, next := matchClass(pat, pi, name[ni]); ok {
					pi = next
					ni++
					continue
				}
			case '\\':
				if pi+1 < len(pat) && pat[pi+1] == name[ni] {
					pi += 2
					ni++
					continue
				}
			default:
				if pat[pi] == name[ni] {
					pi++
					ni++
					continue
				}
			}
		}
		if starPi >= 0 {
			starNi++
			pi = starPi + 1
			ni = starNi
			continue
		}
		return false
	}

	for pi < len(pat) && pat[pi] == '*' {
		pi++
	}
	return pi == len(pat)
}

// matchClass matches byte c against the character class opening at pat[start].
// Returns whether it matched and the index just past the closing bracket.
// An unterminated class is treated as a literal '['.
func matchClass(pat string, start int, c byte) (bool, int) {
	i := start + 1
	negated := false
	if i < len(pat) && (pat[i] == '!' || pat[i] == '^') {
		negated = true
		i++
	}

	matched := false
	first := true
	for i < len(pat) {
		if pat[i] == ']' && !first {
			if negated {
				matched = !matched
			}
			return matched, i + 1
		}
		first = false
		if pat[i] == '\\' && i+1 < len(pat) {
			i++
		}
		lo := pat[i]
		if i+2 < len(pat) && pat[i+1] == '-' && pat[i+2] != ']' {
			hi := pat[i+2]
			if pat[i+2] == '\\' && i+3 < len(pat) {
				hi = pat[i+3]
				i++
			}
			if lo <= c && c <= hi {
				matched = true
			}
			i += 3
			continue
		}
		if c == lo {
			matched = true
		}
		i++
	}

	return c == '[', start + 1
}
