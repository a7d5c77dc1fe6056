package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// htmlExt is the extension of rendered pages.
const htmlExt = ".html"

// stdoutPath is the output path meaning standard output.
const stdoutPath = "-"

// FileToRender represents a single file to process.
// An empty OutputPath means standard output.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds the SVG files to render and their output paths.
// A single file with no output goes to stdout; a directory is walked
// recursively, skipping hidden directories.
func discoverFiles(inputPath, output string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateSVGExtension(inputPath); err != nil {
			return nil, err
		}
		if output == "" || output == stdoutPath {
			return []FileToRender{{InputPath: inputPath}}, nil
		}
		return []FileToRender{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, output, "")}}, nil
	}

	if output == stdoutPath {
		return nil, fmt.Errorf("%w: cannot write a directory to stdout", ErrUsage)
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSVGFile(path) {
			return nil
		}
		files = append(files, FileToRender{InputPath: path, OutputPath: resolveOutputPath(path, output, inputPath)})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for an SVG file.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), base+htmlExt)
	}

	if baseInputDir == "" && strings.EqualFold(filepath.Ext(output), htmlExt) {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(output, relDir, base+htmlExt)
		}
	}

	return filepath.Join(output, base+htmlExt)
}

func isSVGFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// validateSVGExtension checks that the file has a .svg extension.
func validateSVGExtension(path string) error {
	if !isSVGFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
