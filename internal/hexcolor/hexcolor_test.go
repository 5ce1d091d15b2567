// hexcolor_test.go tests [ParseHex] with valid inputs (with and without
// "#" prefix), rejection of malformed strings, the [Hex] round trip, and the
// preset table.

package hexcolor

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

// ///////////////////////////////////////////////
// ParseHex
// ///////////////////////////////////////////////

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"#2a96d1", color.NRGBA{R: 0x2a, G: 0x96, B: 0xd1, A: 255}},
		{"#FFFFFF", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 255}},
		{"#000000", color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{"1a3a5c", color.NRGBA{R: 0x1a, G: 0x3a, B: 0x5c, A: 255}}, // no # prefix
	}

	for _, tt := range tests {
		c, err := ParseHex(tt.input)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.input, err)
			continue
		}
		if c != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.input, c, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	invalid := []string{"#FFF", "#GGGGGG", "", "12345", "#1234567", "##123456", "#12 456", "+12345"}
	for _, s := range invalid {
		_, err := ParseHex(s)
		if err == nil {
			t.Errorf("ParseHex(%q) expected error, got nil", s)
			continue
		}
		if !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", s, err)
		}
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	// Every channel value must survive parse -> format, with and without "#".
	for v := 0; v < 256; v++ {
		digits := strings.Repeat(hexByte(v), 3)
		digits = digits[:2] + hexByte(255-v) + digits[4:]

		for _, input := range []string{digits, "#" + digits} {
			c, err := ParseHex(input)
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", input, err)
			}
			if got := strings.TrimPrefix(Hex(c), "#"); got != digits {
				t.Fatalf("Hex(ParseHex(%q)) = %q, want %q", input, got, digits)
			}
		}
	}
}

func hexByte(v int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}

func TestHex(t *testing.T) {
	got := Hex(color.NRGBA{R: 0x0a, G: 0xb0, B: 0xff, A: 0})
	if got != "#0ab0ff" {
		t.Errorf("Hex = %q, want %q", got, "#0ab0ff")
	}
}

// ///////////////////////////////////////////////
// Presets
// ///////////////////////////////////////////////

func TestPresets(t *testing.T) {
	tests := []struct {
		preset Preset
		hex    string
	}{
		{Brand, "#2a96d1"},
		{White, "#ffffff"},
		{Dark, "#1a3a5c"},
	}
	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			if got := tt.preset.Hex(); got != tt.hex {
				t.Errorf("Hex() = %q, want %q", got, tt.hex)
			}
			if got := Hex(tt.preset.Color()); got != tt.hex {
				t.Errorf("Color() = %q, want %q", got, tt.hex)
			}
			if tt.preset.Color().A != 255 {
				t.Errorf("Color().A = %d, want 255", tt.preset.Color().A)
			}
			if tt.preset.Legend() == "" {
				t.Error("Legend() is empty")
			}
		})
	}
}

func TestPresetsOrder(t *testing.T) {
	got := Presets()
	want := []Preset{Brand, White, Dark}
	if len(got) != len(want) {
		t.Fatalf("Presets() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Presets()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultPreset(t *testing.T) {
	if DefaultPreset != White {
		t.Errorf("DefaultPreset = %q, want %q", DefaultPreset, White)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input   string
		want    Preset
		wantErr bool
	}{
		{"brand", Brand, false},
		{"WHITE", White, false},
		{" dark ", Dark, false},
		{"purple", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUnknownPreset(t *testing.T) {
	p := Preset("nope")
	if p.Hex() != "" {
		t.Errorf("Hex() = %q, want empty", p.Hex())
	}
	if p.Color() != (color.NRGBA{}) {
		t.Errorf("Color() = %v, want zero", p.Color())
	}
}

// ///////////////////////////////////////////////
// Choice
// ///////////////////////////////////////////////

func TestPresetChoice(t *testing.T) {
	c := PresetChoice(Dark)
	if c.Name() != "dark" {
		t.Errorf("Name() = %q, want dark", c.Name())
	}
	if Hex(c.Color) != "#1a3a5c" {
		t.Errorf("Color = %s, want #1a3a5c", Hex(c.Color))
	}
	if c.Legend() != Dark.Legend() {
		t.Errorf("Legend() = %q, want %q", c.Legend(), Dark.Legend())
	}
}

func TestCustomChoice(t *testing.T) {
	c, err := CustomChoice("#123456")
	if err != nil {
		t.Fatalf("CustomChoice: %v", err)
	}
	if c.Name() != "custom" || c.Preset != "" {
		t.Errorf("Name() = %q, Preset = %q; want custom and empty", c.Name(), c.Preset)
	}
	if !strings.Contains(c.Legend(), "custom") {
		t.Errorf("Legend() = %q, want mention of custom", c.Legend())
	}
	if _, err := CustomChoice("#12345"); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("CustomChoice(bad) error = %v, want ErrInvalidHex", err)
	}
}
