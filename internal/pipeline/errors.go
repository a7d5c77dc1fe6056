package pipeline

import "errors"

// Sentinel errors for pipeline stages.
var (
	// ErrMissingSVGClose indicates stylesheets must be inlined but the document
	// has neither a </defs> nor a </svg> closing tag to anchor them.
	ErrMissingSVGClose = errors.New("no </defs> or </svg> closing tag")

	// ErrInvalidState indicates the view state could not be encoded as JSON.
	ErrInvalidState = errors.New("view state is not JSON serializable")

	// ErrHighlight indicates the source view could not be highlighted.
	ErrHighlight = errors.New("source highlighting failed")
)
