// Package validation performs cheap structural checks on saved pack
// documents. The exporters stay tolerant of anything these checks miss;
// a failed check is a warning to the operator, never a hard stop.
package validation

import (
	"fmt"
	"strings"
)

// Issue is one structural problem found in a document
type Issue struct {
	Line    int
	Message string
}

func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("line %d: %s", i.Line, i.Message)
	}
	return i.Message
}

// Report collects the issues found by CheckPack
type Report struct {
	Issues []Issue
}

// LooksLikePack returns true if the document passed every check
func (r *Report) LooksLikePack() bool {
	return len(r.Issues) == 0
}

// Summary joins the issues into one semicolon-separated line
func (r *Report) Summary() string {
	msgs := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		msgs[i] = issue.String()
	}
	return strings.Join(msgs, "; ")
}

func (r *Report) add(line int, message string) {
	r.Issues = append(r.Issues, Issue{Line: line, Message: message})
}

// CheckPack runs line-based checks on a document that should be a pack
// saved in Markdown format: the tree header, balanced fences, a path
// line in front of every code block, and at least one file block after
// the tree. It never parses Markdown.
func CheckPack(content string) *Report {
	report := &Report{}

	if strings.TrimSpace(content) == "" {
		report.add(0, "document is empty")
		return report
	}

	lines := strings.Split(content, "\n")

	if !hasTreeHeader(lines) {
		report.add(0, "no Project Structure header")
	}

	checkFences(lines, report)

	return report
}

// hasTreeHeader checks that the first non-blank line is the tree header
// every pack opens with.
func hasTreeHeader(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return trimmed == "Project Structure:"
	}
	return false
}

// checkFences walks the fenced blocks the way the exporters read them: a
// run of three or more backticks opens a block, and only a bare run at
// least as long closes it, so escalated fences inside file content do
// not end a block early.
func checkFences(lines []string, report *Report) {
	openLine := 0
	openLen := 0
	blocks := 0

	for idx, raw := range lines {
		line := strings.TrimSpace(raw)
		run := fenceRun(line)

		if openLen > 0 {
			if run >= openLen && strings.Trim(line, "`") == "" {
				openLen = 0
			}
			continue
		}

		if run >= 3 {
			blocks++
			openLen = run
			openLine = idx + 1
			if idx == 0 || blankOrFence(lines[idx-1]) {
				report.add(idx+1, "code block without a preceding path line")
			}
		}
	}

	if openLen > 0 {
		report.add(openLine, "unclosed code fence")
	}
	if blocks < 2 {
		report.add(0, "no fenced file blocks after the tree")
	}
}

func blankOrFence(raw string) bool {
	line := strings.TrimSpace(raw)
	return line == "" || fenceRun(line) >= 3
}

// fenceRun returns the length of the leading backtick run.
func fenceRun(line string) int {
	i := 0
	for i < len(line) && line[i] == '`' {
		i++
	}
	return i
}
