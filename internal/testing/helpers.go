package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// WriteTree materializes files (relative path -> content) under a fresh
// temp directory and returns its path. Parent directories are created as
// needed, so nested layouts can be described in one map.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	for relPath, content := range files {
		fullPath := filepath.Join(tmpDir, filepath.FromSlash(relPath))

		parentDir := filepath.Dir(fullPath)
		if err := os.MkdirAll(parentDir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", parentDir, err)
		}

		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", fullPath, err)
		}
	}
	return tmpDir
}

// WriteBinary writes raw bytes to relPath under dir, creating parents.
func WriteBinary(t *testing.T, dir, relPath string, data []byte) string {
	t.Helper()

	fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
	return fullPath
}

// AssertFileExists checks if a file exists at the given path
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks that no file exists at the given path
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks that the file at path contains expected
func AssertFileContains(t *testing.T, path, expected string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	if !strings.Contains(string(data), expected) {
		t.Errorf("File %s does not contain expected content.\nExpected substring: %s\nActual content: %s",
			path, expected, string(data))
	}
}

// CreateYAML writes data as a YAML file into dir and returns its path.
func CreateYAML(t *testing.T, dir, filename string, data map[string]interface{}) string {
	t.Helper()

	out, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("Failed to marshal YAML: %v", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, out, 0644); err != nil {
		t.Fatalf("Failed to write YAML file %s: %v", path, err)
	}
	return path
}
