// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-svgpreview/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForServeBind returns hints for preview server listen errors.
// Inside a container a loopback address is unreachable from the host.
func ForServeBind(addr string) string {
	var hints []string

	if strings.HasPrefix(addr, "127.0.0.1") || strings.HasPrefix(addr, "localhost") {
		if IsInContainer() {
			hints = append(hints, "inside a container, listen on :PORT or 0.0.0.0:PORT")
		}
	}

	if os.Getenv("SVGPREVIEW_ADDR") == "" {
		hints = append(hints, "choose another port with --addr or SVGPREVIEW_ADDR")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-svgpreview/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-svgpreview") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStylesheetRead returns hints for unreadable xml-stylesheet references.
func ForStylesheetRead() string {
	return format("href is resolved relative to the SVG file's directory")
}

// ForNotSVG returns hints for documents rejected by the validator.
func ForNotSVG() string {
	return format("the file must contain an <svg ...> element closed by </svg>")
}

// ForMissingSVGClose returns hints for documents that cannot receive inlined stylesheets.
func ForMissingSVGClose() string {
	return format("add a closing </svg> tag so stylesheets can be inlined")
}

// ForAssetPath returns hints for custom asset directory errors.
func ForAssetPath(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return format("directory may override: " + strings.Join(names, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
