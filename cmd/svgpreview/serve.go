package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/config"
	"github.com/alnah/go-svgpreview/internal/fileutil"
	"github.com/alnah/go-svgpreview/internal/hints"
	"github.com/alnah/go-svgpreview/internal/server"
)

// runServe starts the preview server and blocks until interrupted.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: serve takes one directory, got %d", ErrUsage, len(positional))
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	root := cfg.Server.Root
	if len(positional) == 1 {
		root = positional[0]
	}
	if root == "" {
		root = "."
	}
	if !fileutil.DirExists(root) {
		return fmt.Errorf("%w: %s is not a directory", ErrNoInput, root)
	}

	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	origins := append(append([]string{}, cfg.Server.AllowedOrigins...), flags.origins...)

	store, fileStore, err := settingsStore(configName(flags.common.config, envCfg), cfg, &flags.preview)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flags.common.verbose {
		logOut = env.Stderr
	}

	srv, err := server.New(server.Options{
		Addr:           cfg.Server.Addr,
		Root:           root,
		AllowedOrigins: origins,
		Live:           cfg.Server.LiveEnabled() && !flags.noLive,
		Settings:       store,
		AssetPath:      cfg.Assets.BasePath,
		Log:            logOut,
	})
	if err != nil {
		return withRenderHint(err)
	}

	if fileStore != nil {
		fileStore.OnError = func(err error) {
			fmt.Fprintf(env.Stderr, "warning: config reload: %v\n", err)
			srv.Hub().Warn("config reload failed: " + err.Error())
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s at http://%s/\n", srv.Root(), displayAddr(cfg.Server.Addr))
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		if errors.Is(err, server.ErrListen) {
			return withHint(err, hints.ForServeBind(cfg.Server.Addr))
		}
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Stopped")
	}
	return nil
}

// settingsStore returns the store renders read settings from.
// With a config file, the file is re-read on every render so edits apply
// without a restart; flags still win over the file.
func settingsStore(name string, cfg *config.Config, flags *previewFlags) (svgpreview.SettingsStore, *config.FileStore, error) {
	if name == "" {
		settings := cfg.Preview.Settings()
		flags.apply(&settings)
		return svgpreview.StaticSettings(settings), nil, nil
	}

	store, _, err := config.NewFileStore(name)
	if err != nil {
		return nil, nil, configError(name, err)
	}
	store.Override = flags.apply
	return store, store, nil
}

// displayAddr turns ":8080" into "localhost:8080" for printing.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
