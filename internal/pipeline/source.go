package pipeline

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// SourceStyle is the chroma style used for the source view.
const SourceStyle = "github"

// HighlightSource renders svg as class-annotated HTML using chroma's XML
// lexer, and returns the CSS for those classes.
func HighlightSource(svg string) (htmlOut, css string, err error) {
	lexer := lexers.Get("xml")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(SourceStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.WithLineNumbers(true),
	)

	iterator, err := lexer.Tokenise(nil, svg)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var body strings.Builder
	if err := formatter.Format(&body, style, iterator); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var sheet strings.Builder
	if err := formatter.WriteCSS(&sheet, style); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	return body.String(), sheet.String(), nil
}
