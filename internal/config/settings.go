package config

import (
	"sync"

	svgpreview "github.com/alnah/go-svgpreview"
)

// Settings converts the preview section to render settings.
func (p PreviewConfig) Settings() svgpreview.Settings {
	return svgpreview.Settings{
		ShowTransparencyGrid: deref(p.ShowTransGrid, true),
		TransparencyColor:    p.TransparencyColor,
		AutoInsertNamespace:  deref(p.EnableAutoInsertNamespace, true),
		ShowZoomControls:     deref(p.ShowZoomInOut, true),
		ShowSource:           p.ShowSource,
	}
}

func deref(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// FileStore is a settings store backed by a YAML file.
// The file is re-read on every Settings call so edits apply to the next
// render. When a read fails, the last good settings are returned and the
// error is passed to OnError.
type FileStore struct {
	path string

	// OnError receives reload failures. Nil ignores them.
	OnError func(error)

	// Override, when set, adjusts every loaded value (CLI flags win over the file).
	Override func(*svgpreview.Settings)

	mu       sync.Mutex
	lastGood svgpreview.Settings
}

// Compile-time interface check.
var _ svgpreview.SettingsStore = (*FileStore)(nil)

// NewFileStore resolves nameOrPath like LoadConfig and loads it once.
// Returns the initial load error so a broken file fails fast.
func NewFileStore(nameOrPath string) (*FileStore, *Config, error) {
	path, err := ResolvePath(nameOrPath)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return &FileStore{path: path, lastGood: cfg.Preview.Settings()}, cfg, nil
}

// Path returns the resolved config file path.
func (s *FileStore) Path() string {
	return s.path
}

// Settings re-reads the file and returns its preview settings.
func (s *FileStore) Settings() svgpreview.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := loadFile(s.path)
	if err != nil {
		if s.OnError != nil {
			s.OnError(err)
		}
	} else {
		s.lastGood = cfg.Preview.Settings()
	}

	out := s.lastGood
	if s.Override != nil {
		s.Override(&out)
	}
	return out
}
