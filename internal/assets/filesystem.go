package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-svgpreview/internal/fileutil"
)

// FilesystemLoader reads media overrides from one directory.
// Symlinks are followed but must stay inside the directory.
type FilesystemLoader struct {
	dir string // absolute, symlinks resolved
}

// NewFilesystemLoader opens dir as a media override directory.
// Returns ErrInvalidBasePath unless dir is an existing, listable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	resolved, err := realPath(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	if _, err := os.ReadDir(resolved); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: no such directory: %s", ErrInvalidBasePath, resolved)
		case !fileutil.DirExists(resolved):
			return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, resolved)
		default:
			return nil, fmt.Errorf("%w: unreadable: %v", ErrInvalidBasePath, err)
		}
	}

	return &FilesystemLoader{dir: resolved}, nil
}

// BasePath returns the directory media is read from.
func (f *FilesystemLoader) BasePath() string {
	return f.dir
}

// Load reads the override for name.
func (f *FilesystemLoader) Load(name string) (string, error) {
	if err := ValidateMediaName(name); err != nil {
		return "", err
	}

	target, err := realPath(filepath.Join(f.dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathTraversal, err)
	}
	if !fileutil.IsUnderDir(target, f.dir) {
		return "", fmt.Errorf("%w: %s leaves %s", ErrPathTraversal, name, f.dir)
	}

	data, err := os.ReadFile(target) // #nosec G304 -- confined to f.dir
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrMediaNotFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, name, err)
	}
	return string(data), nil
}

// realPath returns the absolute form of p with symlinks resolved when p
// exists. A missing p is returned absolute but unresolved.
func realPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

var _ Loader = (*FilesystemLoader)(nil)
