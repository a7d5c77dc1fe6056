package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Shell names a shell completion scripts can be generated for.
type Shell string

// Shells with a generator.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned for a shell without a generator.
var ErrUnsupportedShell = errors.New("unsupported shell")

// valueKind says what a flag's value completes to.
type valueKind int

const (
	valueNone valueKind = iota // boolean switch, takes no value
	valueText                  // free-form text or number
	valueFile                  // files matching compFlag.glob
	valueDir                   // directories
)

// compFlag is one flag as the completion scripts see it.
type compFlag struct {
	name  string
	short string
	usage string
	kind  valueKind
	glob  string
}

// compCommand is one subcommand with its flags and positional arguments.
type compCommand struct {
	name    string
	summary string
	flags   []compFlag
	words   []string // fixed positional values
	argGlob string   // file positional pattern
	dirArg  bool     // positional is a directory
}

// pathFlags lists flags whose values are paths. Everything else is read
// from the FlagSet.
var pathFlags = map[string]compFlag{
	"config":     {kind: valueFile, glob: "*.yaml"},
	"output":     {kind: valueDir},
	"asset-path": {kind: valueDir},
}

// flagsOf converts a FlagSet into completion flags.
func flagsOf(fs *flag.FlagSet) []compFlag {
	var out []compFlag
	fs.VisitAll(func(f *flag.Flag) {
		cf := compFlag{name: f.Name, short: f.Shorthand, usage: f.Usage, kind: valueText}
		if f.Value.Type() == "bool" {
			cf.kind = valueNone
		}
		if p, ok := pathFlags[f.Name]; ok {
			cf.kind, cf.glob = p.kind, p.glob
		}
		out = append(out, cf)
	})
	return out
}

// completionCommands describes every subcommand. Flags come from the same
// FlagSet builders the commands parse with, so scripts cannot drift.
func completionCommands() []compCommand {
	doctorFlags := flag.NewFlagSet("doctor", flag.ContinueOnError)
	doctorFlags.Bool("json", false, "output as JSON")

	return []compCommand{
		{
			name:    "render",
			summary: "Render SVG files to HTML preview pages",
			flags:   flagsOf(buildRenderFlagSet(io.Discard, &renderFlags{})),
			argGlob: "*.svg",
			dirArg:  true,
		},
		{
			name:    "check",
			summary: "Report whether files contain an SVG document",
			flags:   flagsOf(buildCheckFlagSet(io.Discard, &checkFlags{})),
			argGlob: "*",
		},
		{
			name:    "serve",
			summary: "Serve live previews of a directory",
			flags:   flagsOf(buildServeFlagSet(io.Discard, &serveFlags{})),
			dirArg:  true,
		},
		{
			name:    "completion",
			summary: "Generate shell completion script",
			words:   []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{
			name:    "doctor",
			summary: "Check the environment",
			flags:   flagsOf(doctorFlags),
		},
		{name: "version", summary: "Show version information"},
		{
			name:    "help",
			summary: "Show help for a command",
			words:   []string{"render", "check", "serve", "completion", "doctor", "version"},
		},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := completionCommands()
	switch shell {
	case ShellBash:
		return generateBash(w, cmds)
	case ShellZsh:
		return generateZsh(w, cmds)
	case ShellFish:
		return generateFish(w, cmds)
	}
	return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
}

// runCompletion prints the script for args[0], or usage without arguments.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgpreview completion <bash|zsh|fish>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print a completion script for the given shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Setup:")
	fmt.Fprintln(w, "  bash   echo 'eval \"$(svgpreview completion bash)\"' >> ~/.bashrc")
	fmt.Fprintln(w, "  zsh    echo 'eval \"$(svgpreview completion zsh)\"' >> ~/.zshrc   # before compinit")
	fmt.Fprintln(w, "  fish   svgpreview completion fish > ~/.config/fish/completions/svgpreview.fish")
}
