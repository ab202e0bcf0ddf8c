// Package render turns a selected set of files into one concatenated
// document: a project tree header followed by each file's content with
// right-aligned line numbers, in plain, XML, or Markdown form.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects the per-file block layout.
type Format string

const (
	FormatDefault  Format = "default"
	FormatXML      Format = "cxml"
	FormatMarkdown Format = "markdown"
)

// Document is one file to render: its path relative to the project root
// (forward slashes) and its decoded content.
type Document struct {
	Path    string
	Content string
}

// Output produces the complete document for docs, which must already be
// in their final order. rootName is the display name of the project root
// in the tree header.
func Output(docs []Document, rootName string, format Format) string {
	var b strings.Builder

	paths := make([]string, len(docs))
	for i, d := range docs {
		paths[i] = d.Path
	}
	fmt.Fprintf(&b, "Project Structure:\n```\n%s\n```\n\n", TreeString(paths, rootName))

	if format == FormatXML {
		b.WriteString("<documents>\n")
	}
	for i, d := range docs {
		switch format {
		case FormatXML:
			renderXML(&b, d, i+1)
		case FormatMarkdown:
			renderMarkdown(&b, d)
		default:
			renderDefault(&b, d)
		}
		b.WriteByte('\n')
	}
	if format == FormatXML {
		b.WriteString("</documents>")
	}
	return b.String()
}

func renderDefault(b *strings.Builder, d Document) {
	fmt.Fprintf(b, "%s\n---\n%s\n---\n", d.Path, NumberLines(d.Content))
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func renderXML(b *strings.Builder, d Document, index int) {
	fmt.Fprintf(b, "<document index=\"%d\">\n<source>%s</source>\n<document_content>", index, d.Path)
	b.WriteString(xmlEscaper.Replace(NumberLines(d.Content)))
	b.WriteString("</document_content>\n</document>")
}

func renderMarkdown(b *strings.Builder, d Document) {
	// Grow the fence until it cannot collide with the raw content.
	fence := "```"
	for strings.Contains(d.Content, fence) {
		fence += "`"
	}
	fmt.Fprintf(b, "%s\n%s%s\n%s\n%s\n", d.Path, fence, fenceLang(d.Path), NumberLines(d.Content), fence)
}

// fenceLang derives the fence language tag from the file extension. A
// leading dot is not an extension, so dotfiles get no tag.
func fenceLang(p string) string {
	base := p
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[i+1:]
	}
	return ""
}

// NumberLines prepends 1-based line numbers, right-aligned to the width
// of the largest number, in the form "  3 | text". Empty content stays
// empty.
func NumberLines(content string) string {
	lines := splitLines(content)
	if len(lines) == 0 {
		return ""
	}
	width := len(strconv.Itoa(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%*d | %s", width, i+1, line)
	}
	return b.String()
}

// splitLines splits on LF, CRLF, and lone CR. A trailing newline does not
// produce a final empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	norm := strings.ReplaceAll(content, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")
	lines := strings.Split(norm, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
