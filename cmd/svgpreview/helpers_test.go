package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and fixture helpers
// ---------------------------------------------------------------------------

const (
	testSVG      = `<svg viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`
	testNotSVG   = `<div>not svg</div>`
	testStyleSVG = `<?xml-stylesheet href="style.css"?>` + "\n" + `<svg><defs></defs><rect class="a"/></svg>`
)

// testEnv is an Environment whose output is captured in buffers.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv builds an Environment reading variables from vars only.
func newTestEnv(vars map[string]string) *testEnv {
	var stdout, stderr bytes.Buffer
	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdout: &stdout,
			Stderr: &stderr,
			Getenv: func(key string) string { return vars[key] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				return out
			},
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// setupTestDir writes files (relative path -> content) under a temp dir.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return dir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
