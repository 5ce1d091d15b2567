package config

import "tools.zach/dev/iconbg/internal/paths"

// ///////////////////////////////////////////////
// Documentation Types
// ///////////////////////////////////////////////

// FieldDoc holds documentation and alternative examples for a single config field.
// The genconfig tool uses [FieldDoc] values to annotate the generated iconbg.default.toml.
type FieldDoc struct {
	// Comment is shown as a header comment above the field in the example config.
	Comment string

	// Alternatives are shown as commented-out lines below the active value.
	Alternatives []string
}

// ///////////////////////////////////////////////
// Field Documentation Map
// ///////////////////////////////////////////////

// ConfigDocs maps TOML field paths (dot-separated, e.g. "background.preset")
// to their [FieldDoc] entries.
var ConfigDocs = map[string]FieldDoc{
	// ── Background ───────────────────────────────────────────────
	"background": {
		Comment: "Canvas color placed behind transparent icon pixels.",
	},
	"background.preset": {
		Comment: "Built-in colors:\n  brand: #2a96d1  brand primary blue\n  white: #ffffff  high contrast, suits every mode\n  dark:  #1a3a5c  brand dark blue",
		Alternatives: []string{
			`preset = "brand"`,
			`preset = "dark"`,
		},
	},
	"background.color": {
		Comment: "Custom \"#rrggbb\" color. Overrides preset when set.",
		Alternatives: []string{
			`color = "#0f172a"`,
		},
	},

	// ── Icons ────────────────────────────────────────────────────
	"icons.public_dir": {
		Comment: "Icon directory, relative to the project root.",
	},
	"icons.output_dir": {
		Comment: "Write flattened icons here instead of overwriting the originals.\nRelative to the project root. Leave unset to replace icons in place (no backup is kept).",
		Alternatives: []string{
			`output_dir = "public/flattened"`,
		},
	},
	"icons.files": {
		Comment: "Icons to flatten, in order. Entries may be doublestar patterns.\nIcons without an alpha channel are left untouched.",
		Alternatives: []string{
			`files = ["android-chrome-*.png", "apple-touch-icon*.png"]`,
		},
	},

	// ── Log ──────────────────────────────────────────────────────
	"log.level": {
		Comment: "Diagnostic log level: trace, debug, info, warn, error",
		Alternatives: []string{
			`level = "debug"`,
		},
	},
	"log.file": {
		Comment: "Log to a rotated file instead of stderr.",
		Alternatives: []string{
			`file = "` + paths.LogFile + `"`,
		},
	},
	"log.max_size_mb": {
		Comment: "Rotate the log file after this many megabytes.",
	},
}
