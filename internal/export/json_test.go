package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewJSONExporter_Success(t *testing.T) {
	exporter, err := NewJSONExporter()
	if err != nil {
		t.Fatalf("Expected no error creating exporter, got %v", err)
	}

	if exporter == nil {
		t.Fatal("Expected exporter to be non-nil")
	}

	if exporter.markdown == nil {
		t.Error("Expected markdown parser to be initialized")
	}
}

func TestJSONExporter_ExportToJSON_Success(t *testing.T) {
	exporter, err := NewJSONExporter()
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	packFile := writePack(t, samplePack)
	jsonFile := filepath.Join(filepath.Dir(packFile), "pack.json")

	err = exporter.ExportToJSON(packFile, jsonFile)
	if err != nil {
		t.Fatalf("Expected no error exporting, got %v", err)
	}

	jsonData, err := os.ReadFile(jsonFile)
	if err != nil {
		t.Fatalf("Failed to read generated JSON: %v", err)
	}

	var doc PackDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if doc.Metadata.Generator.Name != "promptpack" {
		t.Errorf("Expected generator name 'promptpack', got '%s'", doc.Metadata.Generator.Name)
	}

	if doc.Metadata.SourceFile != packFile {
		t.Errorf("Expected source file '%s', got '%s'", packFile, doc.Metadata.SourceFile)
	}

	if doc.Metadata.FileCount != 2 {
		t.Errorf("Expected file count 2, got %d", doc.Metadata.FileCount)
	}

	if doc.Metadata.TotalLines != 4 {
		t.Errorf("Expected total lines 4, got %d", doc.Metadata.TotalLines)
	}

	wantTree := "demo/\n├── main.go\n└── notes.md"
	if doc.Metadata.Tree != wantTree {
		t.Errorf("Expected tree %q, got %q", wantTree, doc.Metadata.Tree)
	}

	if len(doc.Files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(doc.Files))
	}

	first := doc.Files[0]
	if first.Source != "main.go" {
		t.Errorf("Expected source 'main.go', got '%s'", first.Source)
	}
	if first.Language != "go" {
		t.Errorf("Expected language 'go', got '%s'", first.Language)
	}
	if first.Lines != 3 {
		t.Errorf("Expected 3 lines, got %d", first.Lines)
	}

	// The line-number gutter is stripped, recovering the original text.
	wantContent := "package main\n\nfunc main() {}"
	if first.Content != wantContent {
		t.Errorf("Expected content %q, got %q", wantContent, first.Content)
	}

	second := doc.Files[1]
	if second.Source != "notes.md" {
		t.Errorf("Expected source 'notes.md', got '%s'", second.Source)
	}
	if second.Content != "# Notes" {
		t.Errorf("Expected content '# Notes', got %q", second.Content)
	}
	if second.Lines != 1 {
		t.Errorf("Expected 1 line, got %d", second.Lines)
	}
}

func TestJSONExporter_EscalatedFence(t *testing.T) {
	exporter, err := NewJSONExporter()
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	// A packed Markdown file whose content holds a fence of its own gets
	// a longer outer fence from the renderer.
	pack := "snip.md\n" +
		"````md\n" +
		"1 | ```go\n" +
		"2 | code\n" +
		"3 | ```\n" +
		"````\n"

	packFile := writePack(t, pack)
	jsonFile := filepath.Join(filepath.Dir(packFile), "pack.json")

	if err := exporter.ExportToJSON(packFile, jsonFile); err != nil {
		t.Fatalf("Expected no error exporting, got %v", err)
	}

	jsonData, _ := os.ReadFile(jsonFile)
	var doc PackDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(doc.Files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(doc.Files))
	}

	want := "```go\ncode\n```"
	if doc.Files[0].Content != want {
		t.Errorf("Expected content %q, got %q", want, doc.Files[0].Content)
	}

	if doc.Files[0].Lines != 3 {
		t.Errorf("Expected 3 lines, got %d", doc.Files[0].Lines)
	}
}

func TestJSONExporter_UnnumberedPack(t *testing.T) {
	exporter, err := NewJSONExporter()
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	// Without a gutter on every line the block content is kept verbatim.
	pack := "raw.txt\n```\nplain text\n```\n"
	packFile := writePack(t, pack)
	jsonFile := filepath.Join(filepath.Dir(packFile), "pack.json")

	if err := exporter.ExportToJSON(packFile, jsonFile); err != nil {
		t.Fatalf("Expected no error exporting, got %v", err)
	}

	jsonData, _ := os.ReadFile(jsonFile)
	var doc PackDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(doc.Files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(doc.Files))
	}

	if doc.Files[0].Content != "plain text" {
		t.Errorf("Expected verbatim content, got %q", doc.Files[0].Content)
	}

	if doc.Files[0].Language != "" {
		t.Errorf("Expected empty language, got '%s'", doc.Files[0].Language)
	}
}

func TestJSONExporter_EmptyPack(t *testing.T) {
	exporter, err := NewJSONExporter()
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	packFile := writePack(t, "")
	jsonFile := filepath.Join(filepath.Dir(packFile), "pack.json")

	if err := exporter.ExportToJSON(packFile, jsonFile); err != nil {
		t.Fatalf("Expected no error exporting, got %v", err)
	}

	jsonData, _ := os.ReadFile(jsonFile)
	var doc PackDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if doc.Metadata.FileCount != 0 {
		t.Errorf("Expected file count 0, got %d", doc.Metadata.FileCount)
	}

	if len(doc.Files) != 0 {
		t.Errorf("Expected no files, got %d", len(doc.Files))
	}

	// Files marshals as an empty array, not null.
	if !strings.Contains(string(jsonData), "\"files\": []") {
		t.Error("Expected files to marshal as an empty array")
	}
}

func TestJSONExporter_ExportToJSON_FileNotFound(t *testing.T) {
	exporter, err := NewJSONExporter()
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	tmpDir := t.TempDir()
	packFile := filepath.Join(tmpDir, "nonexistent.md")
	jsonFile := filepath.Join(tmpDir, "output.json")

	err = exporter.ExportToJSON(packFile, jsonFile)
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}

	if !strings.Contains(err.Error(), "failed to read pack") {
		t.Errorf("Expected 'failed to read pack' error, got: %v", err)
	}
}

func TestSplitGutter(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     string
		stripped bool
	}{
		{
			name:     "Simple gutter",
			line:     "1 | package main",
			want:     "package main",
			stripped: true,
		},
		{
			name:     "Right-aligned gutter",
			line:     " 12 | text",
			want:     "text",
			stripped: true,
		},
		{
			name:     "Empty source line",
			line:     "3 | ",
			want:     "",
			stripped: true,
		},
		{
			name:     "Pipe inside content",
			line:     "7 | a | b",
			want:     "a | b",
			stripped: true,
		},
		{
			name:     "No gutter",
			line:     "plain text",
			want:     "plain text",
			stripped: false,
		},
		{
			name:     "Non-numeric prefix",
			line:     "x | y",
			want:     "x | y",
			stripped: false,
		},
		{
			name:     "Empty line",
			line:     "",
			want:     "",
			stripped: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := splitGutter(tt.line)
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if ok != tt.stripped {
				t.Errorf("Expected stripped=%v, got %v", tt.stripped, ok)
			}
		})
	}
}
