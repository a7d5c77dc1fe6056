package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-svgpreview/internal/config"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgpreview <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render SVG files to HTML preview pages")
	fmt.Fprintln(w, "  check       Report whether files contain an SVG document")
	fmt.Fprintln(w, "  serve       Serve live previews of a directory")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  doctor      Check the environment")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'svgpreview help <command>' for details on a specific command.")
}

// printPreviewFlags prints the flags shared by render and serve.
func printPreviewFlags(w io.Writer) {
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --grid                Show the transparency grid")
	fmt.Fprintln(w, "      --no-grid             Hide the transparency grid")
	fmt.Fprintln(w, "      --grid-color <css>    Solid background color instead of the checkerboard")
	fmt.Fprintln(w, "      --zoom                Show zoom controls")
	fmt.Fprintln(w, "      --no-zoom             Hide zoom controls")
	fmt.Fprintln(w, "      --no-namespace        Do not insert the SVG namespace")
	fmt.Fprintln(w, "      --source              Show highlighted SVG source below the image")
}

// printCommonFlags prints the flags shared by every command that reads config.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgpreview render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render SVG files to self-contained HTML preview pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    SVG file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (one file: stdout by default)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --state <json>        View state restored by the page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom media directory")
	fmt.Fprintln(w, "      --asset-url <url>     Reference media under this URL instead of inlining it")
	fmt.Fprintln(w)
	printPreviewFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SVGPREVIEW_CONFIG, SVGPREVIEW_ASSET_PATH, SVGPREVIEW_WORKERS")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgpreview check <file>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report whether each file contains an <svg> element closed by </svg>.")
	fmt.Fprintln(w, "Exits with 2 when a file is not SVG and 3 when a file cannot be read.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet               Only report files that are not SVG")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgpreview serve [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve previews of the SVG files under dir (default: current directory).")
	fmt.Fprintln(w, "Pages reload when their file or a stylesheet changes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintf(w, "  -a, --addr <host:port>    Listen address (default %s)\n", config.DefaultAddr)
	fmt.Fprintln(w, "      --allow-origin <url>  Extra CORS origin (repeatable, \"*\" for any)")
	fmt.Fprintln(w, "      --no-live             Disable live reload")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom media directory")
	fmt.Fprintln(w)
	printPreviewFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SVGPREVIEW_CONFIG, SVGPREVIEW_ASSET_PATH, SVGPREVIEW_ADDR")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: svgpreview version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: svgpreview help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
