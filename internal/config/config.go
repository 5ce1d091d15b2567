// Package config provides configuration loading and defaults for iconbg.
//
// Configuration is read from an optional TOML file at the project root. With
// no file present the defaults reproduce the built-in behavior: the three
// PWA icons under public/ flattened onto white, in place.
package config

//go:generate go run ../../cmd/genconfig

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/iconbg/internal/hexcolor"
	"tools.zach/dev/iconbg/internal/paths"
)

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level configuration.
type Config struct {
	// Background selects the canvas color.
	Background BackgroundConfig `toml:"background"`
	// Icons selects which files are flattened and where results go.
	Icons IconsConfig `toml:"icons"`
	// Log holds diagnostic logging settings.
	Log LogConfig `toml:"log"`
}

// BackgroundConfig selects the canvas color.
type BackgroundConfig struct {
	// Preset is one of "brand", "white" or "dark".
	Preset string `toml:"preset"`
	// Color is a "#rrggbb" value that overrides Preset when set.
	Color string `toml:"color,omitempty"`
}

// IconsConfig lists the icons to flatten.
type IconsConfig struct {
	// PublicDir is the icon directory, relative to the project root.
	PublicDir string `toml:"public_dir"`
	// OutputDir receives the flattened icons. Empty overwrites in place.
	OutputDir string `toml:"output_dir,omitempty"`
	// Files are icon names or doublestar patterns relative to PublicDir,
	// processed in order.
	Files []string `toml:"files"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `toml:"level"`
	// File is the log file path. Empty logs to stderr.
	File string `toml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Default Configuration
// ///////////////////////////////////////////////

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Background: BackgroundConfig{
			Preset: hexcolor.DefaultPreset.String(),
		},
		Icons: IconsConfig{
			PublicDir: paths.PublicDir,
			Files:     paths.DefaultIcons(),
		},
		Log: LogConfig{
			Level:     "warn",
			MaxSizeMB: 10,
		},
	}
}

// ExampleConfig returns a Config suitable for generating iconbg.default.toml.
func ExampleConfig() *Config {
	return DefaultConfig()
}

// ///////////////////////////////////////////////
// Loading
// ///////////////////////////////////////////////

// Load reads and parses the configuration file at path. If the file doesn't
// exist, returns DefaultConfig. Keys the file sets replace the defaults.
// Keys the schema does not know are ignored and returned, sorted, so the
// caller can report them once its logger is configured.
func Load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil, nil
		}
		return nil, nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("parse config: %w", err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	sort.Strings(unknown)

	if err := cfg.Validate(); err != nil {
		return nil, unknown, fmt.Errorf("validate config: %w", err)
	}
	return cfg, unknown, nil
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if _, err := c.BackgroundChoice(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Icons.PublicDir) == "" {
		return fmt.Errorf("icons.public_dir must not be empty")
	}
	if len(c.Icons.Files) == 0 {
		return fmt.Errorf("icons.files must list at least one icon")
	}
	for _, f := range c.Icons.Files {
		if f == "" {
			return fmt.Errorf("icons.files contains an empty entry")
		}
		if !doublestar.ValidatePattern(f) {
			return fmt.Errorf("invalid icons.files pattern %q", f)
		}
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, or error", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}
	return nil
}

// BackgroundChoice resolves the configured background. A custom color takes
// precedence over the preset.
func (c *Config) BackgroundChoice() (hexcolor.Choice, error) {
	if c.Background.Color != "" {
		choice, err := hexcolor.CustomChoice(c.Background.Color)
		if err != nil {
			return hexcolor.Choice{}, fmt.Errorf("background.color: %w", err)
		}
		return choice, nil
	}
	preset, err := hexcolor.ParsePreset(c.Background.Preset)
	if err != nil {
		return hexcolor.Choice{}, fmt.Errorf("background.preset: %w", err)
	}
	return hexcolor.PresetChoice(preset), nil
}
