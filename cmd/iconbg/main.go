// Package main implements iconbg, which flattens the transparent PWA icons
// under public/ onto an opaque background so launchers in dark mode do not
// show them on black.
//
// Usage:
//
//	iconbg                   # process <root>/public with iconbg.toml or defaults
//	iconbg -root ../site     # explicit project root
//	iconbg -init             # write a commented iconbg.toml and exit
//
// Icons are replaced in place unless icons.output_dir is configured. Skipped
// icons do not change the exit code; any other failure stops the run and
// exits 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime/debug"
	"strings"

	rootpkg "tools.zach/dev/iconbg"
	"tools.zach/dev/iconbg/internal/atomicfile"
	"tools.zach/dev/iconbg/internal/batch"
	"tools.zach/dev/iconbg/internal/compositor"
	"tools.zach/dev/iconbg/internal/config"
	"tools.zach/dev/iconbg/internal/logger"
	"tools.zach/dev/iconbg/internal/paths"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time via ldflags: -X main.version=$(VERSION).
// Bare go builds fall back to the VCS info embedded by the toolchain.
var version = "dev"

// resolveVersion returns [version] when set via ldflags, otherwise a
// "dev+<hash>" tag built from the embedded VCS revision.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	hash := revision[:min(7, len(revision))]
	if dirty {
		return "dev+" + hash + ".dirty"
	}
	return "dev+" + hash
}

// ///////////////////////////////////////////////
// Entry Point
// ///////////////////////////////////////////////

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one iconbg invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("iconbg", flag.ContinueOnError)
	flags.SetOutput(stderr)
	rootFlag := flags.String("root", "", "Project root containing public/ (default: nearest ancestor of the working directory with a public/ directory)")
	configFlag := flags.String("config", "", "Path to the config file (default: <root>/"+paths.ConfigFile+")")
	initFlag := flags.Bool("init", false, "Write a commented "+paths.ConfigFile+" and exit")
	versionFlag := flags.Bool("version", false, "Print the version and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "iconbg %s\n", resolveVersion())
		return 0
	}

	root, err := resolveRoot(*rootFlag)
	if err != nil {
		fmt.Fprintf(stderr, "error: resolve project root: %v\n", err)
		return 1
	}
	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = root.Config()
	}

	if *initFlag {
		if err := writeDefaultConfig(cfgPath); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", cfgPath)
		return 0
	}

	cfg, unknownKeys, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: load config: %v\n", err)
		return 1
	}
	bg, err := cfg.BackgroundChoice()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log, closer := logger.New(logger.Options{
		Level:     cfg.Log.Level,
		File:      root.Resolve(cfg.Log.File),
		MaxSizeMB: cfg.Log.MaxSizeMB,
	}, stderr)
	defer closer.Close()

	if len(unknownKeys) > 0 {
		log.Warn("ignoring unknown config keys", "path", cfgPath, "keys", strings.Join(unknownKeys, ","))
	}

	log.Info("starting", "version", resolveVersion(), "root", root.Dir, "background", bg.Name())

	fmt.Fprintf(stdout, "Adding backgrounds to PWA icons...\n\n")
	driver := &batch.Driver{
		PublicDir:  root.Resolve(cfg.Icons.PublicDir),
		OutputDir:  root.Resolve(cfg.Icons.OutputDir),
		Icons:      cfg.Icons.Files,
		Compositor: compositor.New(bg.Color, log),
		Out:        stdout,
		Logger:     log,
	}
	results, err := driver.Run()
	if err != nil {
		logger.Fail(log, "run aborted", "error", err, "handled", len(results))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	batch.PrintSummary(stdout, bg, results)
	return 0
}

// resolveRoot returns the project root from the -root flag, or the nearest
// ancestor of the working directory that has a public/ directory.
func resolveRoot(flagValue string) (paths.Root, error) {
	start := flagValue
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return paths.Root{}, err
		}
		dir, err := paths.FindRoot(wd)
		if err != nil {
			return paths.Root{}, err
		}
		return paths.Root{Dir: dir}, nil
	}
	return paths.Root{Dir: start}, nil
}

// writeDefaultConfig writes the embedded, commented default config to path.
// An existing file is never overwritten.
func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := atomicfile.Write(path, rootpkg.DefaultConfigTOML, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
