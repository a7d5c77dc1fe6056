package svgpreview

import "errors"

// Sentinel errors for library operations.
var (
	// Document errors.
	ErrNoDocument   = errors.New("document not found")
	ErrNotSVG       = errors.New("document is not an SVG")
	ErrDocumentRead = errors.New("failed to read document")
	ErrOutsideRoot  = errors.New("document path escapes root directory")

	// Transformation errors.
	ErrStylesheetRead   = errors.New("failed to read stylesheet")
	ErrMissingSVGClose  = errors.New("SVG has no closing tag to inline stylesheets into")
	ErrInvalidViewState = errors.New("invalid view state")

	// Asset errors.
	ErrAssetNotFound    = errors.New("asset not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
