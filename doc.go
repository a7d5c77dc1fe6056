// Package svgpreview renders SVG documents as self-contained HTML preview pages.
//
// # Quick Start
//
// Create a renderer and render a file:
//
//	r, err := svgpreview.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := r.Render(ctx, "icons/logo.svg", svgpreview.ViewState{"zoom": 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("logo.html", []byte(page), 0644)
//
// The page shows the SVG through an <img> data URI. Bundled media (preview.js,
// preview.css, background.css) is inlined as data URIs unless a prefix
// resolver is configured.
//
// # Rendering Pipeline
//
// Each render runs these stages on the document text:
//
//  1. Namespace normalization (inserts xmlns when missing)
//  2. xml-stylesheet extraction, resolved against the document directory
//  3. Stylesheet inlining into the first </defs>, or a new <defs> before </svg>
//  4. Page assembly: view state, transparency grid, zoom controls, image
//
// Settings are read from the SettingsStore on every render, so a file-backed
// store picks up edits without restarting.
//
// # Validation
//
// Use IsSVGLike or CheckSVG before rendering to reject non-SVG documents:
//
//	if !svgpreview.CheckSVG(doc, true, &svgpreview.WriterNotifier{W: os.Stderr}) {
//	    return
//	}
//
// # Collaborators
//
// The renderer reaches the outside world only through small interfaces:
// DocumentSource, SettingsStore, Filesystem, AssetResolver and Notifier.
// FileSource, StaticSettings, OSFilesystem and WriterNotifier are the
// defaults; replace any of them with options:
//
//	r, err := svgpreview.NewRenderer(
//	    svgpreview.WithDocumentSource(svgpreview.FileSource{Root: "/srv/icons"}),
//	    svgpreview.WithSettings(svgpreview.StaticSettings{ShowZoomControls: true}),
//	    svgpreview.WithAssetPrefix("/media/"),
//	)
package svgpreview
