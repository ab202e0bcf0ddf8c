// Package binary decides whether a file should be treated as non-text and
// skipped during selection. Detection is a fixed extension deny-list plus,
// in content mode, a bounded sample of the file's leading bytes.
package binary

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects the detection strategy.
type Mode string

const (
	// ModeContent checks the extension deny-list and then samples the
	// file content. This is the default.
	ModeContent Mode = "content"
	// ModeExtension checks only the extension deny-list. No IO.
	ModeExtension Mode = "extension"
)

// sampleSize bounds how much of a file the content check reads.
const sampleSize = 8 * 1024

// Classifier answers whether a file is binary.
type Classifier struct {
	mode Mode
}

// NewClassifier returns a classifier for the given mode. An unknown mode
// falls back to content detection.
func NewClassifier(mode Mode) *Classifier {
	if mode != ModeExtension {
		mode = ModeContent
	}
	return &Classifier{mode: mode}
}

// Classify reports whether the file at path is binary. The extension
// deny-list applies in both modes; content sampling only in content mode.
func (c *Classifier) Classify(path string) bool {
	if matchesDenyList(path) {
		return true
	}
	if c.mode == ModeExtension {
		return false
	}
	return isBinaryContent(path)
}

// matchesDenyList checks the basename against known lockfiles and the
// lowercased extension against the deny-list.
func matchesDenyList(path string) bool {
	if lockfileNames[filepath.Base(path)] {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	return binaryExtensions[ext]
}

// isBinaryContent samples the first 8 KiB of the file. A null byte means
// binary. Otherwise the file is binary when more than 30% of the sampled
// bytes fall outside printable ASCII, tab, LF, and CR; bytes >= 0x80 count
// as text since they may be UTF-8 continuations. An empty file is text,
// and a file that cannot be opened or read classifies as binary.
func isBinaryContent(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sampleSize)
	n, err := f.Read(buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return true
		}
		return false
	}

	nonTexty := 0
	for i := 0; i < n; i++ {
		b := buf[i]
		if b == 0 {
			return true
		}
		if b != 9 && b != 10 && b != 13 && (b < 32 || b > 126) && b < 128 {
			nonTexty++
		}
	}
	return nonTexty > n*3/10
}
