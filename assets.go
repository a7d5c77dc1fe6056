package svgpreview

import (
	"errors"

	"github.com/alnah/go-svgpreview/internal/assets"
)

// Bundled media names accepted by AssetResolver.URI.
const (
	ScriptAsset     = assets.ScriptName
	StyleAsset      = assets.StyleName
	BackgroundAsset = assets.BackgroundName
)

// MediaLoader loads bundled media content by name.
type MediaLoader interface {
	Load(name string) (string, error)
}

// NewMediaLoader returns a loader for bundled media.
// If dir is empty, only embedded media is used. Otherwise files in dir take
// precedence, with fallback to the embedded copies.
// Returns ErrInvalidAssetPath if dir is set but not a readable directory.
func NewMediaLoader(dir string) (MediaLoader, error) {
	resolver, err := assets.NewResolver(dir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &mediaLoaderAdapter{resolver: resolver}, nil
}

// MediaNames lists the bundled media names.
func MediaNames() []string {
	return assets.NewEmbeddedLoader().Names()
}

// MediaContentType returns the MIME type served for a media name.
func MediaContentType(name string) string {
	return assets.ContentType(name)
}

type mediaLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *mediaLoaderAdapter) Load(name string) (string, error) {
	content, err := a.resolver.Load(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// adaptedResolver maps internal asset errors on URI resolution.
type adaptedResolver struct {
	inner assets.URIResolver
}

func (a adaptedResolver) URI(name string) (string, error) {
	uri, err := a.inner.URI(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return uri, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrMediaNotFound):
		return wrapError(ErrAssetNotFound, err)
	case errors.Is(err, assets.ErrInvalidMediaName):
		return wrapError(ErrAssetNotFound, err) // invalid name means not found
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
