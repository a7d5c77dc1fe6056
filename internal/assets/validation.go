package assets

import (
	"fmt"
	"path"
	"strings"
)

// allowedExtensions lists the media types a preview page may reference.
var allowedExtensions = map[string]bool{
	".js":  true,
	".css": true,
	".svg": true,
}

// ValidateMediaName checks that a media name is safe for use as a filename.
// Returns ErrInvalidMediaName if the name is empty, contains path separators
// or "..", or does not end in a supported extension.
func ValidateMediaName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMediaName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidMediaName, name)
	}
	if !allowedExtensions[path.Ext(name)] {
		return fmt.Errorf("%w: %q (unsupported extension)", ErrInvalidMediaName, name)
	}
	return nil
}
