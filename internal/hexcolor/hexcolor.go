// Package hexcolor parses "#RRGGBB" color strings and defines the named
// background presets an icon can be flattened onto.
package hexcolor

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by [ParseHex] for anything other than six hex
// digits with an optional leading "#".
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses a "#RRGGBB" hex color string into an opaque color.NRGBA.
// The leading "#" is optional.
func ParseHex(hex string) (color.NRGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w %q: must be 6 hex digits", ErrInvalidHex, hex)
	}
	r, err := strconv.ParseUint(digits[0:2], 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidHex, hex, err)
	}
	g, err := strconv.ParseUint(digits[2:4], 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidHex, hex, err)
	}
	b, err := strconv.ParseUint(digits[4:6], 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidHex, hex, err)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

// Hex formats c as a lowercase "#rrggbb" string. Alpha is ignored.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ///////////////////////////////////////////////
// Presets
// ///////////////////////////////////////////////

// Preset names one of the built-in icon background colors.
type Preset string

const (
	// Brand is the primary brand blue.
	Brand Preset = "brand"
	// White gives the highest contrast and is the default.
	White Preset = "white"
	// Dark is the dark brand blue.
	Dark Preset = "dark"
)

// DefaultPreset is used when no preset or custom color is configured.
const DefaultPreset = White

// presetInfo holds the hex value and console legend for a preset.
type presetInfo struct {
	hex    string
	legend string
}

var presets = map[Preset]presetInfo{
	Brand: {hex: "#2a96d1", legend: "brand primary blue"},
	White: {hex: "#ffffff", legend: "white background (high contrast, suits every mode)"},
	Dark:  {hex: "#1a3a5c", legend: "dark blue background (brand dark)"},
}

// Presets returns every preset in declaration order.
func Presets() []Preset {
	return []Preset{Brand, White, Dark}
}

// ParsePreset converts a case-insensitive preset name into a [Preset].
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown background preset %q: must be brand, white, or dark", name)
	}
	return p, nil
}

// String returns the preset name.
func (p Preset) String() string { return string(p) }

// Hex returns the preset's "#rrggbb" value, or "" for an unknown preset.
func (p Preset) Hex() string { return presets[p].hex }

// Legend returns the short human-readable description printed in the summary.
func (p Preset) Legend() string { return presets[p].legend }

// Color returns the preset as an opaque color. Unknown presets yield the
// zero color.
func (p Preset) Color() color.NRGBA {
	info, ok := presets[p]
	if !ok {
		return color.NRGBA{}
	}
	// Preset table values are constants and always parse.
	c, _ := ParseHex(info.hex)
	return c
}

// ///////////////////////////////////////////////
// Choice
// ///////////////////////////////////////////////

// Choice is a resolved background: either a preset or a custom color.
type Choice struct {
	// Preset is the selected preset, or "" for a custom color.
	Preset Preset
	// Color is the opaque background color.
	Color color.NRGBA
}

// PresetChoice returns the Choice for a preset.
func PresetChoice(p Preset) Choice {
	return Choice{Preset: p, Color: p.Color()}
}

// CustomChoice parses hex into a custom Choice.
func CustomChoice(hex string) (Choice, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Color: c}, nil
}

// Name returns the preset name, or "custom".
func (c Choice) Name() string {
	if c.Preset == "" {
		return "custom"
	}
	return c.Preset.String()
}

// Legend returns the summary description of the background.
func (c Choice) Legend() string {
	if c.Preset == "" {
		return "custom background color"
	}
	return c.Preset.Legend()
}
