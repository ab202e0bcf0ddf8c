package session

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/promptpack/internal/analysis"
	"github.com/user/promptpack/internal/selector"
	testHelpers "github.com/user/promptpack/internal/testing"
)

func selNames(t *testing.T, base string, files []selector.File) []string {
	t.Helper()
	var out []string
	for _, f := range files {
		rel, err := filepath.Rel(base, f.Path)
		if err != nil {
			t.Fatalf("rel %s: %v", f.Path, err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestRunBalancedSelection(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{
		"a.txt": strings.Repeat("x", 100),
		"b.txt": strings.Repeat("x", 100),
		"c.txt": strings.Repeat("x", 100),
	})

	confirmed := 0
	s := New(Config{
		Selector: selector.Config{BaseDir: dir, LossyDecode: true},
		Roots:    []string{dir},
		Confirm: func([]analysis.Contributor) bool {
			confirmed++
			return true
		},
	}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateDone {
		t.Errorf("State = %v, want %v", res.State, StateDone)
	}
	if res.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1", res.Iterations)
	}
	if confirmed != 0 {
		t.Errorf("confirm should not run for a balanced selection")
	}
	if got := selNames(t, dir, res.Files); len(got) != 3 {
		t.Errorf("expected 3 files, got %v", got)
	}
}

func TestRunEmptySelection(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{
		"a.txt": "a",
	})

	s := New(Config{
		Selector: selector.Config{BaseDir: dir, Exclude: []string{"*"}, LossyDecode: true},
		Roots:    []string{dir},
	}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateEmpty {
		t.Errorf("State = %v, want %v", res.State, StateEmpty)
	}
	if len(res.Files) != 0 {
		t.Errorf("empty state should carry no files, got %v", res.Files)
	}
}

func TestRunExcludesConfirmedOffender(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{
		"big.txt":   strings.Repeat("x", 800),
		"small.txt": strings.Repeat("x", 200),
	})

	var prompts [][]analysis.Contributor
	s := New(Config{
		Selector: selector.Config{BaseDir: dir, LossyDecode: true},
		Roots:    []string{dir},
		Confirm: func(offenders []analysis.Contributor) bool {
			prompts = append(prompts, offenders)
			return true
		},
	}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(prompts) != 1 {
		t.Fatalf("expected one confirmation round, got %d", len(prompts))
	}
	if len(prompts[0]) != 1 || prompts[0][0].Path != "big.txt" {
		t.Fatalf("expected big.txt as sole offender, got %+v", prompts[0])
	}
	if prompts[0][0].IsDir {
		t.Errorf("big.txt should be reported as a file")
	}

	if res.State != StateDone {
		t.Errorf("State = %v, want %v", res.State, StateDone)
	}
	if res.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", res.Iterations)
	}
	if got := selNames(t, dir, res.Files); strings.Join(got, ",") != "small.txt" {
		t.Errorf("final selection = %v, want [small.txt]", got)
	}
	if strings.Join(res.Excludes, ",") != "big.txt" {
		t.Errorf("Excludes = %v, want [big.txt]", res.Excludes)
	}
}

func TestRunDeclinedOffender(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{
		"big.txt":   strings.Repeat("x", 800),
		"small.txt": strings.Repeat("x", 200),
	})

	s := New(Config{
		Selector: selector.Config{BaseDir: dir, LossyDecode: true},
		Roots:    []string{dir},
		Confirm:  func([]analysis.Contributor) bool { return false },
	}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateDone {
		t.Errorf("State = %v, want %v", res.State, StateDone)
	}
	if res.Iterations != 1 {
		t.Errorf("declining should finish in one iteration, got %d", res.Iterations)
	}
	if got := selNames(t, dir, res.Files); len(got) != 2 {
		t.Errorf("declining keeps the oversized selection, got %v", got)
	}
	if len(res.Excludes) != 0 {
		t.Errorf("declining must not grow the excludes, got %v", res.Excludes)
	}
}

func TestRunFoldsDirectoryOffender(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{
		"vendor/a.txt": strings.Repeat("x", 300),
		"vendor/b.txt": strings.Repeat("x", 300),
		"x.go":         strings.Repeat("x", 100),
		"y.go":         strings.Repeat("x", 100),
		"z.go":         strings.Repeat("x", 100),
	})

	var prompts [][]analysis.Contributor
	s := New(Config{
		Selector: selector.Config{BaseDir: dir, LossyDecode: true},
		Roots:    []string{dir},
		Confirm: func(offenders []analysis.Contributor) bool {
			prompts = append(prompts, offenders)
			return true
		},
	}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(prompts) != 1 || len(prompts[0]) != 1 {
		t.Fatalf("expected one round with one offender, got %+v", prompts)
	}
	if prompts[0][0].Path != "vendor" || !prompts[0][0].IsDir {
		t.Fatalf("expected the vendor directory, got %+v", prompts[0][0])
	}

	if strings.Join(res.Excludes, ",") != "vendor/**" {
		t.Errorf("directory offenders fold in as recursive patterns, got %v", res.Excludes)
	}
	if got := selNames(t, dir, res.Files); strings.Join(got, ",") != "x.go,y.go,z.go" {
		t.Errorf("final selection = %v, want the three source files", got)
	}
	if res.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", res.Iterations)
	}
}

func TestRunKeepsCallerExcludes(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{
		"big.txt":   strings.Repeat("x", 800),
		"small.txt": strings.Repeat("x", 200),
		"note.md":   strings.Repeat("x", 200),
	})

	base := []string{"*.md"}
	s := New(Config{
		Selector: selector.Config{BaseDir: dir, Exclude: base, LossyDecode: true},
		Roots:    []string{dir},
		Confirm:  func([]analysis.Contributor) bool { return true },
	}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if strings.Join(res.Excludes, ",") != "*.md,big.txt" {
		t.Errorf("Excludes = %v, want [*.md big.txt]", res.Excludes)
	}
	// The caller's slice itself must stay untouched.
	if len(base) != 1 || base[0] != "*.md" {
		t.Errorf("caller exclude slice was mutated: %v", base)
	}
}

func TestRunContextCanceled(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{"a.txt": "a"})

	s := New(Config{
		Selector: selector.Config{BaseDir: dir, LossyDecode: true},
		Roots:    []string{dir},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Run(ctx); err == nil {
		t.Fatalf("expected a context error")
	}
}

func TestRunNilConfirmDeclines(t *testing.T) {
	dir := testHelpers.WriteTree(t, map[string]string{
		"big.txt":   strings.Repeat("x", 800),
		"small.txt": strings.Repeat("x", 200),
	})

	s := New(Config{
		Selector: selector.Config{BaseDir: dir, LossyDecode: true},
		Roots:    []string{dir},
	}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.State != StateDone || len(res.Files) != 2 {
		t.Errorf("nil confirm should keep the selection, got state %v with %d files",
			res.State, len(res.Files))
	}
}
