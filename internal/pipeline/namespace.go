package pipeline

import "strings"

// SVGNamespace is the attribute inserted by AddNamespace.
const SVGNamespace = `xmlns="http://www.w3.org/2000/svg"`

// AddNamespace inserts the SVG namespace attribute right after the first
// "<svg" token unless the text already contains it verbatim.
// Other attributes on the tag are kept and follow the inserted namespace.
func AddNamespace(svg string) string {
	if strings.Contains(svg, SVGNamespace) {
		return svg
	}
	return strings.Replace(svg, "<svg", "<svg "+SVGNamespace, 1)
}
