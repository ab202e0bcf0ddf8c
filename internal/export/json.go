package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// treeHeader is the paragraph the pack renderer writes before the
// directory tree block.
const treeHeader = "Project Structure:"

// JSONExporter converts a Markdown-format pack into structured JSON
type JSONExporter struct {
	markdown goldmark.Markdown
}

// NewJSONExporter creates a new JSON exporter with Goldmark configured
func NewJSONExporter() (*JSONExporter, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	return &JSONExporter{
		markdown: md,
	}, nil
}

// ExportToJSON parses a Markdown-format pack and writes it as a
// structured JSON file: one document per packed file, with the source
// path, fence language, content with the line-number gutter removed,
// and the line count.
func (e *JSONExporter) ExportToJSON(packPath, outputPath string) error {
	packContent, err := os.ReadFile(packPath)
	if err != nil {
		return fmt.Errorf("failed to read pack: %w", err)
	}

	packDoc, err := e.buildPackDocument(packContent, packPath)
	if err != nil {
		return fmt.Errorf("failed to build JSON document: %w", err)
	}

	jsonData, err := marshalJSON(packDoc)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}

// buildPackDocument walks the Markdown AST pairing each path paragraph
// with the fenced code block that follows it. The first fence after the
// tree header paragraph is the directory tree, not a file.
func (e *JSONExporter) buildPackDocument(source []byte, sourceFile string) (*PackDocument, error) {
	reader := text.NewReader(source)
	doc := e.markdown.Parser().Parse(reader)

	var (
		files      []FileDocument
		tree       string
		lastPara   string
		totalLines int
	)

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Paragraph:
			lastPara = strings.Join(nodeLines(n, source), "\n")
		case *ast.FencedCodeBlock:
			lines := nodeLines(n, source)
			if tree == "" && lastPara == treeHeader {
				tree = strings.Join(lines, "\n")
				lastPara = ""
				continue
			}
			if lastPara == "" {
				continue
			}
			files = append(files, FileDocument{
				Source:   lastPara,
				Language: string(n.Language(source)),
				Content:  strings.Join(stripGutter(lines), "\n"),
				Lines:    len(lines),
			})
			totalLines += len(lines)
			lastPara = ""
		}
	}

	metadata := PackMetadata{
		GeneratedAt: time.Now(),
		Generator: Generator{
			Name:    "promptpack",
			Version: "1.0.0",
			URL:     "https://github.com/user/promptpack",
		},
		SourceFile: sourceFile,
		FileCount:  len(files),
		TotalLines: totalLines,
		Tree:       tree,
	}

	if files == nil {
		files = []FileDocument{}
	}

	return &PackDocument{
		Metadata: metadata,
		Files:    files,
	}, nil
}

// nodeLines returns the raw source lines spanned by a block node,
// without trailing newlines.
func nodeLines(n ast.Node, source []byte) []string {
	segments := n.Lines()
	lines := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lines = append(lines, strings.TrimRight(string(source[seg.Start:seg.Stop]), "\n"))
	}
	return lines
}

// stripGutter removes the right-aligned "N | " prefix the pack renderer
// adds to every line. If any line does not carry the gutter the block is
// returned unchanged.
func stripGutter(lines []string) []string {
	stripped := make([]string, len(lines))
	for i, line := range lines {
		rest, ok := splitGutter(line)
		if !ok {
			return lines
		}
		stripped[i] = rest
	}
	return stripped
}

func splitGutter(line string) (string, bool) {
	sep := strings.Index(line, " | ")
	if sep <= 0 {
		return line, false
	}
	number := strings.TrimLeft(line[:sep], " ")
	if number == "" {
		return line, false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return line, false
		}
	}
	return line[sep+3:], true
}

// marshalJSON converts the PackDocument to JSON bytes with indentation
func marshalJSON(doc *PackDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return data, nil
}
