package pipeline

import (
	"html"
	"strings"
)

// MetaID is the id of the element carrying the serialized view state.
const MetaID = "svgpreview-data"

// Element ids bound by the preview script.
const (
	ImageID     = "svgimg"
	ZoomInID    = "zoom_in"
	ZoomOutID   = "zoom_out"
	ZoomResetID = "zoom_reset"
)

const zoomControls = `<div class="svgv-zoom-container">
<button class="svgv-btn" type="button" title="Zoom in" id="` + ZoomInID + `">+</button>
<button class="svgv-btn" type="button" title="Zoom out" id="` + ZoomOutID + `">-</button>
<button class="svgv-btn" type="button" title="Reset Zoom" id="` + ZoomResetID + `">Reset</button>
</div>`

// PageData holds everything BuildPage places in the preview document.
type PageData struct {
	// StateAttr is the already escaped view state (see SerializeState).
	StateAttr string

	// GridColor, when set, becomes the image background verbatim.
	GridColor string
	// GridStyleURI links the checkerboard stylesheet when GridColor is empty.
	GridStyleURI string

	ScriptURI string
	StyleURI  string

	ZoomControls bool

	// SVG is the fully transformed document; BuildPage encodes it.
	SVG string

	// LiveURL and Path enable live reload in the preview script.
	LiveURL string
	Path    string

	// SourceHTML and SourceCSS come from HighlightSource.
	SourceHTML string
	SourceCSS  string
}

// BuildPage assembles the preview HTML document.
func BuildPage(data *PageData) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html><html><head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")

	b.WriteString(`<meta id="` + MetaID + `" data-state="` + data.StateAttr + `"`)
	if data.LiveURL != "" {
		b.WriteString(` data-live="` + html.EscapeString(data.LiveURL) + `"`)
		b.WriteString(` data-path="` + html.EscapeString(data.Path) + `"`)
	}
	b.WriteString(">\n")

	b.WriteString(transparencyBlock(data.GridColor, data.GridStyleURI))

	b.WriteString(`<script src="` + html.EscapeString(data.ScriptURI) + `"></script>` + "\n")
	b.WriteString(`<link rel="stylesheet" href="` + html.EscapeString(data.StyleURI) + `" type="text/css">` + "\n")

	if data.SourceCSS != "" {
		b.WriteString("<style>" + sanitizeCSS(data.SourceCSS) + "</style>\n")
	}

	b.WriteString("</head><body>\n")

	if data.ZoomControls {
		b.WriteString(zoomControls + "\n")
	}

	b.WriteString(`<div class="svgv-bg"><img id="` + ImageID + `" src="` + SVGDataURI(data.SVG) + `"></div>` + "\n")

	if data.SourceHTML != "" {
		b.WriteString(`<details class="svgv-source"><summary>Source</summary>`)
		b.WriteString(data.SourceHTML)
		b.WriteString("</details>\n")
	}

	b.WriteString("</body></html>")
	return b.String()
}

// transparencyBlock returns the grid style for the image wrapper.
// The color is written verbatim; no CSS validation happens here.
func transparencyBlock(color, linkURI string) string {
	if color != "" {
		return `<style type="text/css">
.svgv-bg img {
    background: ` + color + `;
    transform-origin: top left;
}
</style>
`
	}
	if linkURI != "" {
		return `<link rel="stylesheet" href="` + html.EscapeString(linkURI) + `" type="text/css">` + "\n"
	}
	return ""
}

// sanitizeCSS escapes sequences that could close a <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
