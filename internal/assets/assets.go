package assets

import (
	"encoding/base64"
	"path"
	"strings"
)

// Bundled media names.
const (
	ScriptName     = "preview.js"
	StyleName      = "preview.css"
	BackgroundName = "background.css"
)

// URIResolver maps a media name to a URI the display surface can load.
type URIResolver interface {
	URI(name string) (string, error)
}

// PrefixResolver resolves media names to URLs under Prefix.
type PrefixResolver struct {
	Prefix string // e.g. "/media/" or "file:///opt/svgpreview/media/"
}

// URI joins the prefix and the validated name.
func (p PrefixResolver) URI(name string) (string, error) {
	if err := ValidateMediaName(name); err != nil {
		return "", err
	}
	prefix := p.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + name, nil
}

// InlineResolver resolves media names to base64 data URIs holding the content
// returned by Loader.
type InlineResolver struct {
	Loader Loader
}

// URI loads the media and encodes it as a data URI.
func (r InlineResolver) URI(name string) (string, error) {
	content, err := r.Loader.Load(name)
	if err != nil {
		return "", err
	}
	return "data:" + ContentType(name) + ";base64," + base64.StdEncoding.EncodeToString([]byte(content)), nil
}

// ContentType returns the MIME type for a media name based on its extension.
func ContentType(name string) string {
	switch path.Ext(name) {
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// Compile-time interface checks.
var (
	_ URIResolver = PrefixResolver{}
	_ URIResolver = InlineResolver{}
)
