package main

// Notes:
// - discoverFiles/resolveOutputPath: we test single files, stdout, mirror
//   layout for directories and hidden directory skipping.
// - runRender: we test end to end through real files in temp dirs; the
//   renderer itself is covered by the root package tests.
// - resolveWorkers: auto depends on GOMAXPROCS, so only bounds are checked.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	svgpreview "github.com/alnah/go-svgpreview"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Input discovery and output mapping
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.svg":          testSVG,
		"sub/b.SVG":      testSVG,
		"sub/notes.txt":  "x",
		".hidden/c.svg":  testSVG,
		"sub/.git/d.svg": testSVG,
	})

	t.Run("single file defaults to stdout", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(filepath.Join(dir, "a.svg"), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != "" {
			t.Errorf("files = %+v, want one stdout entry", files)
		}
	})

	t.Run("single file dash is stdout", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(filepath.Join(dir, "a.svg"), "-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if files[0].OutputPath != "" {
			t.Errorf("OutputPath = %q, want empty", files[0].OutputPath)
		}
	})

	t.Run("single file to html path", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "out", "page.html")
		files, err := discoverFiles(filepath.Join(dir, "a.svg"), out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if files[0].OutputPath != out {
			t.Errorf("OutputPath = %q, want %q", files[0].OutputPath, out)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "sub", "notes.txt"), "")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "missing.svg"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("directory to stdout is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(dir, "-")
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("directory mirrors layout and skips hidden", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "site")
		files, err := discoverFiles(dir, out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got []string
		for _, f := range files {
			rel, _ := filepath.Rel(out, f.OutputPath)
			got = append(got, filepath.ToSlash(rel))
		}
		sort.Strings(got)

		want := []string{"a.html", "sub/b.html"}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("outputs = %v, want %v", got, want)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path rules
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		output  string
		baseDir string
		want    string
	}{
		{"next to input", "icons/a.svg", "", "", filepath.Join("icons", "a.html")},
		{"explicit html file", "a.svg", "page.html", "", "page.html"},
		{"explicit html uppercase", "a.svg", "PAGE.HTML", "", "PAGE.HTML"},
		{"output directory", "a.svg", "out", "", filepath.Join("out", "a.html")},
		{"mirror nested", filepath.Join("in", "x", "b.svg"), "out", "in", filepath.Join("out", "x", "b.html")},
		{"mirror top level", filepath.Join("in", "c.svg"), "out", "in", filepath.Join("out", "c.html")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.input, tt.output, tt.baseDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath(%q, %q, %q) = %q, want %q", tt.input, tt.output, tt.baseDir, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker count bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1, false},
		{MaxWorkers, false},
		{MaxWorkers + 1, true},
	}

	for _, tt := range tests {
		tt := tt
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolveWorkers - Auto and capped worker counts
// ---------------------------------------------------------------------------

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(4, 2); got != 2 {
		t.Errorf("resolveWorkers(4, 2) = %d, want 2 (capped at jobs)", got)
	}
	if got := resolveWorkers(3, 10); got != 3 {
		t.Errorf("resolveWorkers(3, 10) = %d, want 3", got)
	}
	if got := resolveWorkers(0, 100); got < 1 || got > MaxWorkers {
		t.Errorf("resolveWorkers(0, 100) = %d, want within [1, %d]", got, MaxWorkers)
	}
}

// ---------------------------------------------------------------------------
// TestRunRender - End to end rendering
// ---------------------------------------------------------------------------

func TestRunRender(t *testing.T) {
	t.Parallel()

	t.Run("single file to stdout", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"icon.svg": testSVG})
		env := newTestEnv(nil)

		err := runRender(context.Background(), []string{"--no-zoom", filepath.Join(dir, "icon.svg")}, env.Environment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		page := env.stdout.String()
		if !strings.Contains(page, "data:image/svg+xml") {
			t.Error("page should embed the SVG as a data URI")
		}
		if strings.Contains(page, `id="zoom_in"`) {
			t.Error("--no-zoom page should not contain zoom buttons")
		}
	})

	t.Run("stylesheet is inlined", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{
			"icon.svg":  testStyleSVG,
			"style.css": ".a{fill:red}",
		})
		env := newTestEnv(nil)

		out := filepath.Join(dir, "icon.html")
		err := runRender(context.Background(), []string{"-o", out, filepath.Join(dir, "icon.svg")}, env.Environment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		page := readFile(t, out)
		if !strings.Contains(page, "fill%3Ared") {
			t.Error("page should contain the encoded stylesheet rule")
		}
		if !strings.Contains(env.stdout.String(), "Created "+out) {
			t.Errorf("stdout = %q, want Created line", env.stdout.String())
		}
	})

	t.Run("missing stylesheet fails", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"icon.svg": testStyleSVG})
		env := newTestEnv(nil)

		err := runRender(context.Background(), []string{filepath.Join(dir, "icon.svg")}, env.Environment)
		if !errors.Is(err, svgpreview.ErrStylesheetRead) {
			t.Fatalf("error = %v, want ErrStylesheetRead", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error should carry a hint, got %q", err.Error())
		}
		if env.stdout.Len() != 0 {
			t.Error("no partial page should be written")
		}
	})

	t.Run("directory batch", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{
			"in/a.svg":     testSVG,
			"in/sub/b.svg": testSVG,
			"in/bad.svg":   testNotSVG,
		})
		env := newTestEnv(nil)
		out := filepath.Join(dir, "out")

		err := runRender(context.Background(), []string{"-w", "2", "-o", out, filepath.Join(dir, "in")}, env.Environment)
		if !errors.Is(err, ErrRenderFailed) {
			t.Fatalf("error = %v, want ErrRenderFailed", err)
		}
		if !isSilent(err) {
			t.Error("batch failure should be silent")
		}

		for _, rel := range []string{"a.html", filepath.Join("sub", "b.html")} {
			if _, statErr := os.Stat(filepath.Join(out, rel)); statErr != nil {
				t.Errorf("expected %s: %v", rel, statErr)
			}
		}
		if _, statErr := os.Stat(filepath.Join(out, "bad.html")); statErr == nil {
			t.Error("bad.html should not be written")
		}
		if !strings.Contains(env.stderr.String(), "FAILED") {
			t.Errorf("stderr = %q, want FAILED line", env.stderr.String())
		}
		if !strings.Contains(env.stdout.String(), "2 succeeded, 1 failed") {
			t.Errorf("stdout = %q, want summary", env.stdout.String())
		}
	})

	t.Run("workers from environment", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"icon.svg": testSVG})
		env := newTestEnv(map[string]string{"SVGPREVIEW_WORKERS": "2"})

		if err := runRender(context.Background(), []string{"-v", filepath.Join(dir, "icon.svg")}, env.Environment); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(env.stderr.String(), "with 1 worker(s)") {
			t.Errorf("stderr = %q, want worker count capped at one job", env.stderr.String())
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		env := newTestEnv(nil)

		err := runRender(context.Background(), []string{dir}, env.Environment)
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("too many inputs", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		err := runRender(context.Background(), []string{"a.svg", "b.svg"}, env.Environment)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("config not found has hint", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		err := runRender(context.Background(), []string{"-c", "definitely-missing-config", "a.svg"}, env.Environment)
		if err == nil || !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error = %v, want config hint", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRenderBatch_Canceled - Canceled context skips work
// ---------------------------------------------------------------------------

func TestRenderBatch_Canceled(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.svg": testSVG, "b.svg": testSVG})
	renderer, err := svgpreview.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	params := &renderParams{renderer: renderer, source: svgpreview.FileSource{}}
	files := []FileToRender{
		{InputPath: filepath.Join(dir, "a.svg"), OutputPath: filepath.Join(dir, "a.html")},
		{InputPath: filepath.Join(dir, "b.svg"), OutputPath: filepath.Join(dir, "b.html")},
	}

	results := renderBatch(ctx, params, files, 2)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", r.InputPath, r.Err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Result reporting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []RenderResult{
		{InputPath: "a.svg", OutputPath: "a.html", Duration: 12 * time.Millisecond},
		{InputPath: "b.svg", Err: svgpreview.ErrNotSVG},
	}

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		failed := printResults(results, false, false, env.Environment)

		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if !strings.Contains(env.stdout.String(), "Created a.html") {
			t.Errorf("stdout = %q", env.stdout.String())
		}
		if !strings.Contains(env.stderr.String(), "FAILED b.svg") {
			t.Errorf("stderr = %q", env.stderr.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		printResults(results, true, false, env.Environment)

		if env.stdout.Len() != 0 {
			t.Errorf("quiet stdout = %q, want empty", env.stdout.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		printResults(results, false, true, env.Environment)

		if !strings.Contains(env.stdout.String(), "a.svg -> a.html (12ms)") {
			t.Errorf("stdout = %q", env.stdout.String())
		}
	})
}
