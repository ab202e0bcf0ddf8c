package export

import "time"

// PackDocument is the complete JSON output structure
type PackDocument struct {
	Metadata PackMetadata   `json:"metadata"`
	Files    []FileDocument `json:"files"`
}

// PackMetadata describes the exported pack
type PackMetadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Generator   Generator `json:"generator"`
	SourceFile  string    `json:"source_file"`
	FileCount   int       `json:"file_count"`
	TotalLines  int       `json:"total_lines"`
	Tree        string    `json:"tree,omitempty"`
}

// Generator information
type Generator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

// FileDocument is one packed file recovered from the Markdown
type FileDocument struct {
	Source   string `json:"source"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
	Lines    int    `json:"lines"`
}
