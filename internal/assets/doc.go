// Package assets provides the media bundled with every preview page: the
// interaction script, the base stylesheet and the transparency checkerboard.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (bundled media)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// # URI Resolution
//
// A preview page references media by URI. PrefixResolver maps a media name to
// a URL under a prefix (the preview server mounts media at /media/).
// InlineResolver embeds the media content as a data URI so a rendered page is
// self-contained on disk.
//
// # Security
//
// Media names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within its base directory.
package assets
