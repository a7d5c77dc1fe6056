package main

import (
	"context"
	"fmt"

	svgpreview "github.com/alnah/go-svgpreview"
)

// runCheck reports whether each file holds an SVG document.
// Files that cannot be read are I/O errors; files that are not SVG are
// usage errors.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, files, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: check needs at least one file", ErrNoInput)
	}

	source := svgpreview.FileSource{}
	var firstIOErr error
	notSVG := 0

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := source.Open(ctx, path)
		if err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", path, err)
			if firstIOErr == nil {
				firstIOErr = err
			}
			continue
		}

		warn := svgpreview.NotifierFunc(func(msg string) {
			fmt.Fprintf(env.Stderr, "warning: %s: %s\n", path, msg)
		})
		if !svgpreview.CheckSVG(doc, true, warn) {
			notSVG++
			continue
		}

		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "ok %s\n", path)
		}
	}

	if firstIOErr != nil {
		return silentError{firstIOErr}
	}
	if notSVG > 0 {
		return silentError{fmt.Errorf("%w: %d of %d file(s)", svgpreview.ErrNotSVG, notSVG, len(files))}
	}
	return nil
}
