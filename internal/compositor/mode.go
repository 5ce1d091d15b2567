package compositor

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrNotPNG is returned by [DetectMode] when the data does not start with a
// PNG signature followed by an IHDR chunk.
var ErrNotPNG = errors.New("not a PNG image")

// Mode is the color mode recorded in a PNG header.
type Mode int

// PNG IHDR color types.
const (
	ModeGray      Mode = 0
	ModeRGB       Mode = 2
	ModePaletted  Mode = 3
	ModeGrayAlpha Mode = 4
	ModeRGBA      Mode = 6
)

// String returns a short lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeGray:
		return "gray"
	case ModeRGB:
		return "rgb"
	case ModePaletted:
		return "paletted"
	case ModeGrayAlpha:
		return "gray+alpha"
	case ModeRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Flattenable reports whether icons in this mode get a background. Only
// truecolor-with-alpha images qualify; palette transparency and gray+alpha
// icons are left alone.
func (m Mode) Flattenable() bool {
	return m == ModeRGBA
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// ihdrColorTypeOffset is signature(8) + length(4) + "IHDR"(4) + width(4) +
// height(4) + bit depth(1).
const ihdrColorTypeOffset = 25

// DetectMode reads the color type from the IHDR chunk of PNG data. Only the
// header is inspected; the pixel data is not validated.
func DetectMode(data []byte) (Mode, error) {
	if len(data) <= ihdrColorTypeOffset || !bytes.HasPrefix(data, pngSignature) {
		return 0, ErrNotPNG
	}
	if string(data[12:16]) != "IHDR" {
		return 0, fmt.Errorf("%w: first chunk is %q, want IHDR", ErrNotPNG, data[12:16])
	}
	return Mode(data[ihdrColorTypeOffset]), nil
}
