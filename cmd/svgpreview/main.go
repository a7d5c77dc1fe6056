package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches the command and returns the process exit code.
// Recovers from panics so a bug prints a message instead of a stack trace.
func runMain(args []string, env *Environment) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(env.Stderr, "internal error: %v\n", r)
			code = ExitGeneral
		}
	}()

	warnUnknownEnvVars(env.Stderr, env.Environ())

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]

	var err error
	switch {
	case cmd == "render":
		err = runRender(ctx, rest, env)
	case cmd == "check":
		err = runCheck(ctx, rest, env)
	case cmd == "serve":
		err = runServe(ctx, rest, env)
	case cmd == "completion":
		err = runCompletion(rest, env)
	case cmd == "doctor":
		return runDoctorCmd(rest, env)
	case cmd == "version" || cmd == "--version":
		fmt.Fprintf(env.Stdout, "svgpreview %s\n", Version)
		return ExitSuccess
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		runHelp(rest, env)
		return ExitSuccess
	case looksLikeSVG(cmd):
		// "svgpreview icon.svg" is shorthand for "svgpreview render icon.svg".
		err = runRender(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		if !isSilent(err) {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// looksLikeSVG reports whether arg is a path to an .svg file.
func looksLikeSVG(arg string) bool {
	return !strings.HasPrefix(arg, "-") && strings.EqualFold(filepath.Ext(arg), ".svg")
}
