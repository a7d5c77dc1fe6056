package svgpreview_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	svgpreview "github.com/alnah/go-svgpreview"
)

// Example renders SVG text with URL-referenced media.
func Example() {
	r, err := svgpreview.NewRenderer(
		svgpreview.WithSettings(svgpreview.StaticSettings{ShowZoomControls: true}),
		svgpreview.WithAssetPrefix("/media/"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	page, err := r.RenderSVG(context.Background(), `<svg width="8" height="8"></svg>`, ".", svgpreview.ViewState{"zoom": 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(page, `id="zoom_in"`))
	fmt.Println(strings.Contains(page, `data-state="{&quot;zoom&quot;:2}"`))
	// Output:
	// true
	// true
}

// ExampleIsSVGLike shows the presence check used to gate previews.
func ExampleIsSVGLike() {
	fmt.Println(svgpreview.IsSVGLike("<svg>\n</svg>"))
	fmt.Println(svgpreview.IsSVGLike("<div>not svg</div>"))
	// Output:
	// true
	// false
}

// ExampleCheckSVG shows the warning emitted for non-SVG documents.
func ExampleCheckSVG() {
	doc := &svgpreview.Document{Text: "plain text", Path: "notes.txt"}
	ok := svgpreview.CheckSVG(doc, true, &svgpreview.WriterNotifier{W: os.Stdout})
	fmt.Println(ok)
	// Output:
	// warning: Active editor doesn't show a SVG document - no properties to preview.
	// false
}
