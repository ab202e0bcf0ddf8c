package gitignore

import (
	"testing"
)

func TestMatcherLastMatchWins(t *testing.T) {
	m := ParseLines([]string{"*.log", "!keep.log"})

	if m.Matches("keep.log", false) {
		t.Errorf("keep.log should be un-matched by the negation")
	}
	if !m.Matches("other.log", false) {
		t.Errorf("other.log should match *.log")
	}
	if !m.Matches("nested/deep/other.log", false) {
		t.Errorf("unanchored *.log should match at any depth")
	}
	if m.Matches("nested/keep.log", false) {
		t.Errorf("negation should apply at any depth too")
	}
}

func TestMatcherPatterns(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		path    string
		isDir   bool
		matched bool
	}{
		{"unanchored basename", []string{"foo"}, "foo", false, true},
		{"unanchored at depth", []string{"foo"}, "a/b/foo", false, true},
		{"unanchored dir containment", []string{"foo"}, "a/foo/bar.txt", false, true},
		{"anchored by leading slash", []string{"/foo"}, "foo", false, true},
		{"anchored misses nested", []string{"/foo"}, "a/foo", false, false},
		{"slash anchors implicitly", []string{"build/out"}, "build/out", false, true},
		{"implicit anchor misses nested", []string{"build/out"}, "x/build/out", false, false},
		{"dir-only matches directory", []string{"logs/"}, "logs", true, true},
		{"dir-only rejects file", []string{"logs/"}, "logs", false, false},
		{"dir-only covers contents", []string{"logs/"}, "logs/app/today.log", false, true},
		{"dir-only covers same-named child", []string{"logs/"}, "logs/logs", false, true},
		{"star stays in segment", []string{"a/*.txt"}, "a/b.txt", false, true},
		{"star does not cross slash", []string{"a/*.txt"}, "a/b/c.txt", false, false},
		{"double star crosses", []string{"a/**/c.txt"}, "a/b1/b2/c.txt", false, true},
		{"double star matches zero", []string{"a/**/c.txt"}, "a/c.txt", false, true},
		{"trailing double star", []string{"dist/**"}, "dist/js/app.js", false, true},
		{"trailing double star covers dir", []string{"dist/**"}, "dist", true, true},
		{"leading double star", []string{"**/vendor"}, "a/b/vendor", true, true},
		{"question mark", []string{"file?.txt"}, "file1.txt", false, true},
		{"question mark one char", []string{"file?.txt"}, "file12.txt", false, false},
		{"char class", []string{"*.[ch]"}, "main.c", false, true},
		{"char class range", []string{"v[0-9]"}, "v7", false, true},
		{"char class negated", []string{"*.[!c]"}, "main.c", false, false},
		{"no rules", nil, "anything", false, false},
		{"empty path", []string{"*"}, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseLines(tt.lines)
			if got := m.Matches(tt.path, tt.isDir); got != tt.matched {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.matched)
			}
		})
	}
}

func TestMatcherNegationOrdering(t *testing.T) {
	// The negation only wins when it comes after the match.
	m := ParseLines([]string{"!keep.log", "*.log"})
	if !m.Matches("keep.log", false) {
		t.Errorf("a negation before the matching rule must not rescue the path")
	}

	// Re-exclusion after a negation.
	m = ParseLines([]string{"*.log", "!keep.log", "keep.log"})
	if !m.Matches("keep.log", false) {
		t.Errorf("a later positive rule should re-match the path")
	}
}

func TestMatcherDirectoryContainment(t *testing.T) {
	m := ParseLines([]string{"node_modules/"})

	if !m.Matches("node_modules", true) {
		t.Fatalf("directory itself should match")
	}
	if !m.Matches("node_modules/pkg/index.js", false) {
		t.Fatalf("files inside a matched directory should match")
	}
	if m.Matches("node_modules_backup", true) {
		t.Fatalf("sibling with a shared prefix should not match")
	}
}

func TestParseLineSyntax(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		path    string
		matched bool
	}{
		{"comment ignored", []string{"# *.go"}, "main.go", false},
		{"blank ignored", []string{"", "   "}, "main.go", false},
		{"escaped hash literal", []string{`\#notes`}, "#notes", true},
		{"escaped bang literal", []string{`\!important`}, "!important", true},
		{"trailing spaces trimmed", []string{"foo   "}, "foo", true},
		{"crlf trimmed", []string{"foo\r"}, "foo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseLines(tt.lines)
			if got := m.Matches(tt.path, false); got != tt.matched {
				t.Errorf("Matches(%q) = %v, want %v (rules %q)", tt.path, got, tt.matched, tt.lines)
			}
		})
	}
}

func TestParseString(t *testing.T) {
	m := ParseString("*.tmp\n!keep.tmp\ncache/\n")
	if m.Len() != 3 {
		t.Fatalf("expected 3 compiled rules, got %d", m.Len())
	}
	if !m.Matches("a/b.tmp", false) {
		t.Errorf("*.tmp should match a/b.tmp")
	}
	if m.Matches("keep.tmp", false) {
		t.Errorf("keep.tmp should be un-matched")
	}
	if !m.Matches("cache", true) {
		t.Errorf("cache/ should match the cache directory")
	}
}
