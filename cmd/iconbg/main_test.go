package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rootpkg "tools.zach/dev/iconbg"
	"tools.zach/dev/iconbg/internal/compositor"
	"tools.zach/dev/iconbg/internal/paths"
)

// ///////////////////////////////////////////////
// Helpers
// ///////////////////////////////////////////////

// newProject creates a temp project root with a public/ directory and writes
// a transparent icon for each name.
func newProject(t *testing.T, icons ...string) string {
	t.Helper()
	root := t.TempDir()
	public := filepath.Join(root, paths.PublicDir)
	if err := os.MkdirAll(public, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.SetNRGBA(4, 4, color.NRGBA{R: 42, G: 150, B: 209, A: 255})
	for _, name := range icons {
		f, err := os.Create(filepath.Join(public, name))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode: %v", err)
		}
		f.Close()
	}
	return root
}

func iconMode(t *testing.T, path string) compositor.Mode {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	mode, err := compositor.DetectMode(data)
	if err != nil {
		t.Fatalf("DetectMode: %v", err)
	}
	return mode
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// ///////////////////////////////////////////////
// resolveVersion Tests
// ///////////////////////////////////////////////

func TestResolveVersionWithLdflags(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	if got := resolveVersion(); got != "1.2.3" {
		t.Errorf("resolveVersion() = %q, want %q", got, "1.2.3")
	}
}

func TestResolveVersionDev(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "dev"
	got := resolveVersion()
	// Either "dev" (no VCS info in test binaries) or "dev+<hash>[.dirty]".
	if !strings.HasPrefix(got, "dev") {
		t.Errorf("resolveVersion() = %q, expected to start with 'dev'", got)
	}
}

// ///////////////////////////////////////////////
// run Tests
// ///////////////////////////////////////////////

func TestRunDefaults(t *testing.T) {
	root := newProject(t, paths.DefaultIcons()...)

	code, stdout, stderr := runCLI("-root", root)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	for _, name := range paths.DefaultIcons() {
		if mode := iconMode(t, filepath.Join(root, paths.PublicDir, name)); mode != compositor.ModeRGB {
			t.Errorf("%s mode = %v, want rgb", name, mode)
		}
	}
	for _, want := range []string{
		"processing: android-chrome-192x192.png",
		"Flattened 3 of 3 icons.",
		"background: #ffffff (white)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRunMissingIconsStillSucceeds(t *testing.T) {
	root := newProject(t, paths.AppleTouchIcon)

	code, stdout, stderr := runCLI("-root", root)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 with skipped icons; stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "missing: android-chrome-192x192.png") {
		t.Errorf("stdout missing skip line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Flattened 1 of 3 icons (2 skipped).") {
		t.Errorf("stdout missing summary:\n%s", stdout)
	}
}

func TestRunCorruptIconFails(t *testing.T) {
	root := newProject(t)
	bad := filepath.Join(root, paths.PublicDir, paths.AndroidChrome192)
	if err := os.WriteFile(bad, []byte("junk"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, _, stderr := runCLI("-root", root)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "[FAIL] run aborted") {
		t.Errorf("stderr missing FAIL log:\n%s", stderr)
	}
	if !strings.Contains(stderr, "error: android-chrome-192x192.png") {
		t.Errorf("stderr missing error line:\n%s", stderr)
	}
}

func TestRunConfigPresetAndOutputDir(t *testing.T) {
	root := newProject(t, paths.AppleTouchIcon)
	cfg := `
[background]
preset = "dark"

[icons]
output_dir = "out"
files = ["apple-*.png"]
`
	if err := os.WriteFile(filepath.Join(root, paths.ConfigFile), []byte(cfg), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, stdout, stderr := runCLI("-root", root)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	if mode := iconMode(t, filepath.Join(root, paths.PublicDir, paths.AppleTouchIcon)); mode != compositor.ModeRGBA {
		t.Errorf("source icon mode = %v, want untouched rgba", mode)
	}
	if mode := iconMode(t, filepath.Join(root, "out", paths.AppleTouchIcon)); mode != compositor.ModeRGB {
		t.Errorf("output icon mode = %v, want rgb", mode)
	}
	if !strings.Contains(stdout, "background: #1a3a5c (dark)") {
		t.Errorf("stdout missing dark background:\n%s", stdout)
	}
}

func TestRunUnknownKeysReachLogFile(t *testing.T) {
	root := newProject(t)
	cfg := "[log]\nfile = \"iconbg.log\"\nformat = \"json\"\n"
	if err := os.WriteFile(filepath.Join(root, paths.ConfigFile), []byte(cfg), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, _, stderr := runCLI("-root", root)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	data, err := os.ReadFile(filepath.Join(root, paths.LogFile))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "[WARN] ignoring unknown config keys") || !strings.Contains(string(data), "keys=log.format") {
		t.Errorf("log file missing unknown key warning:\n%s", data)
	}
	if strings.Contains(stderr, "unknown config keys") {
		t.Errorf("warning leaked to stderr:\n%s", stderr)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	root := newProject(t)
	path := filepath.Join(root, "custom.toml")
	if err := os.WriteFile(path, []byte("[background]\ncolor = \"blue\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, _, stderr := runCLI("-root", root, "-config", path)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "load config") {
		t.Errorf("stderr = %q, want load config error", stderr)
	}
}

func TestRunInit(t *testing.T) {
	root := newProject(t)

	code, stdout, stderr := runCLI("-root", root, "-init")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	path := filepath.Join(root, paths.ConfigFile)
	if !strings.Contains(stdout, path) {
		t.Errorf("stdout = %q, want written path", stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(data, rootpkg.DefaultConfigTOML) {
		t.Error("written config differs from the embedded default")
	}

	// A second -init must not clobber the file.
	if code, _, stderr := runCLI("-root", root, "-init"); code != 1 || !strings.Contains(stderr, "already exists") {
		t.Errorf("second -init = %d, %q; want 1 and already exists", code, stderr)
	}

	// The written file loads and drives a normal run.
	if code, _, stderr := runCLI("-root", root); code != 0 {
		t.Errorf("run with generated config = %d, stderr:\n%s", code, stderr)
	}
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI("-version")
	if code != 0 || !strings.HasPrefix(stdout, "iconbg ") {
		t.Errorf("-version = %d, %q", code, stdout)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code, _, _ := runCLI("-nope"); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRunLogFile(t *testing.T) {
	root := newProject(t, paths.AndroidChrome512)
	cfg := "[log]\nlevel = \"debug\"\nfile = \"iconbg.log\"\n"
	if err := os.WriteFile(filepath.Join(root, paths.ConfigFile), []byte(cfg), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, _, stderr := runCLI("-root", root)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	data, err := os.ReadFile(filepath.Join(root, paths.LogFile))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "flattened icon") {
		t.Errorf("log file missing compositor debug line:\n%s", data)
	}
	if strings.Contains(stderr, "[DEBUG]") {
		t.Errorf("debug output leaked to stderr:\n%s", stderr)
	}
}

// ///////////////////////////////////////////////
// resolveRoot Tests
// ///////////////////////////////////////////////

func TestResolveRootFlag(t *testing.T) {
	dir := t.TempDir()
	root, err := resolveRoot(dir)
	if err != nil {
		t.Fatalf("resolveRoot: %v", err)
	}
	if root.Dir != dir {
		t.Errorf("root = %q, want %q", root.Dir, dir)
	}
}
