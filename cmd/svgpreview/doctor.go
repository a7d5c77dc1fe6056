package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"runtime"

	flag "github.com/spf13/pflag"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/config"
	"github.com/alnah/go-svgpreview/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Env      envInfo    `json:"environment"`
	Config   configInfo `json:"config"`
	Assets   assetsInfo `json:"assets"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	Addr          string `json:"addr"`
}

// configInfo holds config file resolution results.
type configInfo struct {
	Name  string `json:"name,omitempty"`
	Path  string `json:"path,omitempty"`
	Valid bool   `json:"valid"`
}

// assetsInfo holds media lookup results.
type assetsInfo struct {
	Bundled    []string `json:"bundled"`
	CustomPath string   `json:"custom_path,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	var jsonOutput bool
	fs := newFlagSet("doctor", env.Stderr, printDoctorUsage)
	fs.BoolVar(&jsonOutput, "json", false, "output as JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	envCfg := loadEnvConfig(env.Getenv)

	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
			Addr: config.DefaultAddr,
		},
		Assets: assetsInfo{Bundled: svgpreview.MediaNames()},
	}

	checkEnvironment(result, env.Getenv)
	checkConfig(result, envCfg)
	checkAssets(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, getenv func(string) string) {
	result.Env.Container, result.Env.ContainerHint = isContainer(getenv)

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint names the signal that matched.
func isContainer(getenv func(string) string) (bool, string) {
	if getenv("SVGPREVIEW_CONTAINER") == "1" {
		return true, "SVGPREVIEW_CONTAINER=1"
	}
	if fileutil.FileExists("/.dockerenv") {
		return true, "/.dockerenv"
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkConfig resolves and loads the config named by SVGPREVIEW_CONFIG.
func checkConfig(result *doctorResult, envCfg *envConfig) {
	cfg := config.DefaultConfig()
	result.Config.Valid = true

	if name := envCfg.ConfigPath; name != "" {
		result.Config.Name = name
		path, err := config.ResolvePath(name)
		if err != nil {
			result.Config.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Config %q not found", name))
			return
		}
		result.Config.Path = path

		loaded, err := config.LoadConfig(path)
		if err != nil {
			result.Config.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Config %s: %v", path, err))
			return
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	result.Env.Addr = cfg.Server.Addr
	result.Assets.CustomPath = cfg.Assets.BasePath

	if result.Env.Container && isLoopback(cfg.Server.Addr) {
		result.Warnings = append(result.Warnings,
			"Container detected but serve listens on loopback. Set SVGPREVIEW_ADDR=0.0.0.0:8080")
	}
}

// isLoopback reports whether addr only accepts local connections.
func isLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	return host == "localhost" || net.ParseIP(host).IsLoopback()
}

// checkAssets verifies the custom media directory, if any.
func checkAssets(result *doctorResult) {
	dir := result.Assets.CustomPath
	if dir == "" {
		return
	}
	if _, err := svgpreview.NewMediaLoader(dir); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Asset path %s: %v", dir, err))
	}
}

// checkSystem verifies the temp directory is writable.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "svgpreview-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "svgpreview doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintf(w, "  [OK] Serve address: %s\n", r.Env.Addr)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	switch {
	case r.Config.Name == "":
		fmt.Fprintln(w, "  [OK] Defaults (no SVGPREVIEW_CONFIG)")
	case r.Config.Valid:
		fmt.Fprintf(w, "  [OK] Loaded %s\n", r.Config.Path)
	default:
		fmt.Fprintf(w, "  [ERROR] Could not load %s\n", r.Config.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Assets")
	fmt.Fprintf(w, "  [OK] Bundled: %d file(s)\n", len(r.Assets.Bundled))
	if r.Assets.CustomPath != "" {
		fmt.Fprintf(w, "  [--] Custom path: %s\n", r.Assets.CustomPath)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [WARN] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to preview")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printDoctorUsage prints help for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgpreview doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the platform, config file and media directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Output as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SVGPREVIEW_CONFIG, SVGPREVIEW_ASSET_PATH, SVGPREVIEW_ADDR, SVGPREVIEW_CONTAINER")
}
