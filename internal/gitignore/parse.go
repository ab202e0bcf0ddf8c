package gitignore

import (
	"bufio"
	"io"
	"strings"
)

// ParseLines builds a Matcher from raw ignore-file lines. Blank lines and
// comments are dropped; everything else compiles in order.
func ParseLines(lines []string) *Matcher {
	m := &Matcher{}
	for _, raw := range lines {
		pattern, negate, ok := parseLine(raw)
		if !ok {
			continue
		}
		if r, ok := compileRule(pattern, negate); ok {
			m.rules = append(m.rules, r)
		}
	}
	return m
}

// ParseReader reads ignore-file content line by line and compiles it.
func ParseReader(r io.Reader) (*Matcher, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ParseLines(lines), nil
}

// ParseString is a convenience wrapper around ParseLines for literal rule
// blocks, mostly used by tests.
func ParseString(content string) *Matcher {
	return ParseLines(strings.Split(content, "\n"))
}

// parseLine strips line-level syntax: CR endings, comments, the negation
// marker, leading escapes for "#" and "!", and unescaped trailing spaces.
// ok is false when the line carries no pattern.
func parseLine(raw string) (pattern string, negate, ok bool) {
	line := strings.TrimSuffix(raw, "\r")
	if line == "" || strings.TrimSpace(line) == "" {
		return "", false, false
	}
	if strings.HasPrefix(line, "#") {
		return "", false, false
	}
	if strings.HasPrefix(line, "!") {
		negate = true
		line = line[1:]
	} else if strings.HasPrefix(line, `\#`) || strings.HasPrefix(line, `\!`) {
		line = line[1:]
	}
	line = trimTrailingSpace(line)
	if line == "" {
		return "", false, false
	}
	return line, negate, true
}

// trimTrailingSpace removes trailing spaces unless the last one is escaped
// with a backslash, per gitignore rules.
func trimTrailingSpace(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		if len(s) > 1 && s[len(s)-2] == '\\' {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
