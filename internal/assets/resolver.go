package assets

import (
	"errors"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom directory is configured, media is looked up there first and
// falls back to the embedded copy when it is not found.
type Resolver struct {
	custom   *FilesystemLoader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded media is used.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// Load loads media, trying the custom loader first if available.
// Only "not found" errors fall back; validation and I/O errors are returned.
func (r *Resolver) Load(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.Load(name)
	}

	content, err := r.custom.Load(name)
	if err == nil {
		return content, nil
	}

	if !errors.Is(err, ErrMediaNotFound) {
		return "", err
	}

	return r.embedded.Load(name)
}

// HasCustomLoader returns true if a custom media directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Roots returns the local directories media may be served from.
// Empty when only embedded media is in use.
func (r *Resolver) Roots() []string {
	if r.custom == nil {
		return nil
	}
	return []string{r.custom.BasePath()}
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
