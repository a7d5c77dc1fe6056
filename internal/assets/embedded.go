package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed media/*
var media embed.FS

// EmbeddedLoader loads media from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load loads a bundled media file by name (e.g. "preview.js").
func (e *EmbeddedLoader) Load(name string) (string, error) {
	if err := ValidateMediaName(name); err != nil {
		return "", err
	}

	content, err := media.ReadFile("media/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMediaNotFound, name)
	}

	return string(content), nil
}

// Names lists the bundled media names in lexical order.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(media, "media")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
