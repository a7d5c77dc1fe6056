package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// stylesheetPattern matches <?xml-stylesheet ... href="..." ...?> instructions.
// "." does not cross lines, so an instruction must sit on a single line.
var stylesheetPattern = regexp.MustCompile(`(?i)<\?\s*xml-stylesheet\s+.*href="(.+?)".*\s*\?>`)

// ReadFunc returns the text of a resolved stylesheet path.
type ReadFunc func(path string) (string, error)

// ExtractStylesheets returns the href of every xml-stylesheet instruction in
// document order. Duplicates are kept.
func ExtractStylesheets(svg string) []string {
	matches := stylesheetPattern.FindAllStringSubmatch(svg, -1)
	if len(matches) == 0 {
		return nil
	}
	hrefs := make([]string, 0, len(matches))
	for _, m := range matches {
		hrefs = append(hrefs, m[1])
	}
	return hrefs
}

// ResolveHref joins href onto baseDir like a plain path join, so absolute
// hrefs are still placed under baseDir. file:// URLs are reduced to their
// path first.
func ResolveHref(baseDir, href string) string {
	if strings.HasPrefix(href, "file://") {
		if u, err := url.Parse(href); err == nil {
			href = u.Path
		}
	}
	return filepath.Join(baseDir, filepath.FromSlash(href))
}

// InlineStylesheets reads every href through read and inserts the contents
// as CDATA <style> blocks before the first case-insensitive </defs>.
// Without </defs>, the blocks are wrapped in <defs> and placed before the
// first </svg>. An empty href list returns svg unchanged.
// Any read failure aborts the whole operation.
func InlineStylesheets(ctx context.Context, svg string, hrefs []string, read ReadFunc) (string, error) {
	if len(hrefs) == 0 {
		return svg, nil
	}

	var styles strings.Builder
	for _, href := range hrefs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		css, err := read(href)
		if err != nil {
			return "", err
		}
		styles.WriteString(`<style type="text/css"><![CDATA[`)
		styles.WriteString(css)
		styles.WriteString(`]]></style>`)
	}

	lower := strings.ToLower(svg)

	if idx := strings.Index(lower, "</defs>"); idx != -1 {
		return svg[:idx] + styles.String() + svg[idx:], nil
	}

	if idx := strings.Index(lower, "</svg>"); idx != -1 {
		return svg[:idx] + "<defs>" + styles.String() + "</defs>" + svg[idx:], nil
	}

	return "", fmt.Errorf("%w: %d stylesheet(s) to inline", ErrMissingSVGClose, len(hrefs))
}
