package svgpreview

import "regexp"

// NotSVGMessage is the warning emitted when a document cannot be previewed.
const NotSVGMessage = "Active editor doesn't show a SVG document - no properties to preview."

// svgPattern matches an opening <svg followed, possibly across lines, by </svg>.
var svgPattern = regexp.MustCompile(`(?s)<svg.*</svg>`)

// IsSVGLike reports whether text contains "<svg" and a later "</svg>".
// It is a presence check, not an XML parse.
func IsSVGLike(text string) bool {
	return svgPattern.MatchString(text)
}

// CheckSVG reports whether doc holds an SVG document.
// A nil doc always warns through n. Otherwise a warning is emitted only when
// the text is not SVG-like and warn is true. A nil n discards warnings.
func CheckSVG(doc *Document, warn bool, n Notifier) bool {
	if doc == nil {
		notify(n, NotSVGMessage)
		return false
	}
	if IsSVGLike(doc.Text) {
		return true
	}
	if warn {
		notify(n, NotSVGMessage)
	}
	return false
}

func notify(n Notifier, msg string) {
	if n != nil {
		n.Warn(msg)
	}
}
