// Package pipeline implements the SVG-to-HTML preview transformation.
//
// Every stage is a pure string transform; I/O is supplied by the caller
// through callbacks so the root svgpreview package owns filesystem access:
//   - Namespace normalization (AddNamespace)
//   - xml-stylesheet extraction (ExtractStylesheets, ResolveHref)
//   - Stylesheet inlining into <defs> (InlineStylesheets)
//   - View state serialization (SerializeState)
//   - Data URI encoding (EncodeURIComponent, SVGDataURI)
//   - Source highlighting (HighlightSource)
//   - Page assembly (BuildPage)
package pipeline
