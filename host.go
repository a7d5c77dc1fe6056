package svgpreview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/net/html/charset"

	"github.com/alnah/go-svgpreview/internal/fileutil"
)

// DocumentSource resolves a document identity to its text and path.
type DocumentSource interface {
	Open(ctx context.Context, id string) (*Document, error)
}

// SettingsStore supplies render settings. Settings is called once per render.
type SettingsStore interface {
	Settings() Settings
}

// Filesystem reads referenced stylesheets.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
}

// Notifier displays a warning to the user.
type Notifier interface {
	Warn(msg string)
}

// AssetResolver maps a bundled media name ("preview.js", "preview.css",
// "background.css") to a URI the page can load.
type AssetResolver interface {
	URI(name string) (string, error)
}

// Compile-time interface checks.
var (
	_ DocumentSource = FileSource{}
	_ SettingsStore  = StaticSettings{}
	_ Filesystem     = OSFilesystem{}
	_ Notifier       = (*WriterNotifier)(nil)
	_ Notifier       = NotifierFunc(nil)
)

// ---------------------------------------------------------------------------
// FileSource
// ---------------------------------------------------------------------------

// xmlEncodingPattern captures the encoding declared in an XML prolog.
var xmlEncodingPattern = regexp.MustCompile(`^\s*<\?xml[^>]*\sencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileSource opens documents from the local filesystem.
// The id is a file path; when Root is set, ids are relative to Root and
// may not resolve outside it.
// Text is decoded to UTF-8 using the encoding named in the XML declaration.
type FileSource struct {
	Root string
}

// Open reads and decodes the document named by id.
func (s FileSource) Open(ctx context.Context, id string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path confined to Root when set
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoDocument, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentRead, id, err)
	}

	return &Document{Text: text, Path: path}, nil
}

// resolve maps id to an absolute path, enforcing Root confinement.
func (s FileSource) resolve(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrNoDocument)
	}

	if s.Root == "" {
		abs, err := filepath.Abs(id)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
		}
		return abs, nil
	}

	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}

	path := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(id, "/")))
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}

	if !fileutil.IsUnderDir(path, root) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, id)
	}
	return path, nil
}

// decodeText converts raw document bytes to a UTF-8 string.
// A UTF-8 byte order mark is dropped; other encodings are read from the
// XML declaration.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	m := xmlEncodingPattern.FindSubmatch(data)
	if m == nil {
		return string(data), nil
	}

	label := strings.ToLower(string(m[1]))
	if label == "utf-8" || label == "utf8" {
		return string(data), nil
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ---------------------------------------------------------------------------
// Defaults
// ---------------------------------------------------------------------------

// StaticSettings is a SettingsStore that always returns the same settings.
type StaticSettings Settings

// Settings returns s unchanged.
func (s StaticSettings) Settings() Settings {
	return Settings(s)
}

// OSFilesystem reads files with os.ReadFile.
type OSFilesystem struct{}

// ReadFile reads the named file.
func (OSFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) // #nosec G304 -- stylesheet paths come from the document
}

// WriterNotifier writes each warning as a "warning: " line to W.
// A nil W discards warnings.
type WriterNotifier struct {
	W  io.Writer
	mu sync.Mutex
}

// Warn writes msg to W.
func (n *WriterNotifier) Warn(msg string) {
	if n == nil || n.W == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.W, "warning: %s\n", msg)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(msg string)

// Warn calls f(msg).
func (f NotifierFunc) Warn(msg string) {
	if f != nil {
		f(msg)
	}
}
