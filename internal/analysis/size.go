// Package analysis computes how much each file and directory contributes
// to the total size of the collected output and reports the paths whose
// share is large enough that the operator may want to exclude them.
package analysis

import (
	"path/filepath"
	"sort"
	"strings"
)

// LargeContentThresholdPercent is the share of total output size above
// which a path is reported as a large contributor.
const LargeContentThresholdPercent = 35

// Contributor is a path whose aggregated content size exceeds the
// threshold. Paths are relative to the common root, forward-slashed.
type Contributor struct {
	Path    string
	Size    int
	Percent float64
	IsDir   bool
}

// FindLargeContributors aggregates the size of every file into itself and
// each of its ancestor directories up to commonRoot, then returns the
// contributors above the threshold, reduced to the nearest ones: when both
// a directory and something inside it qualify, only the inner path is
// reported, since excluding it is the smallest change that resolves the
// imbalance. The result is sorted by path. A zero total yields nil, as
// does a single-file selection: the only file always holds 100% and
// excluding it would just empty the output.
func FindLargeContributors(contents map[string]string, commonRoot string) []Contributor {
	if len(contents) < 2 {
		return nil
	}
	total := 0
	for _, text := range contents {
		total += len(text)
	}
	if total == 0 {
		return nil
	}

	sizes := make(map[string]int)
	files := make(map[string]bool)
	for path, text := range contents {
		rel := relativeTo(commonRoot, path)
		files[rel] = true
		segs := strings.Split(rel, "/")
		for i := 1; i <= len(segs); i++ {
			sizes[strings.Join(segs[:i], "/")] += len(text)
		}
	}

	var candidates []string
	for path, size := range sizes {
		if float64(size)/float64(total)*100 > LargeContentThresholdPercent {
			candidates = append(candidates, path)
		}
	}
	sort.Strings(candidates)

	var result []Contributor
	for _, path := range candidates {
		if hasCandidateDescendant(path, candidates) {
			continue
		}
		size := sizes[path]
		result = append(result, Contributor{
			Path:    path,
			Size:    size,
			Percent: float64(size) / float64(total) * 100,
			IsDir:   !files[path],
		})
	}
	return result
}

// hasCandidateDescendant reports whether any other candidate lives under
// path.
func hasCandidateDescendant(path string, candidates []string) bool {
	prefix := path + "/"
	for _, other := range candidates {
		if strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}

// relativeTo makes path relative to root with forward slashes. A path
// that cannot be made relative is used as-is.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
