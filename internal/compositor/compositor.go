// Package compositor flattens transparent icons onto a solid background.
//
// [Compositor.Apply] reads a PNG, and when it carries an alpha channel draws
// it over an opaque canvas of the configured color, then writes the result as
// a PNG with no alpha channel. Writing to the input path replaces the source
// icon; no backup is kept.
package compositor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	"tools.zach/dev/iconbg/internal/atomicfile"
	"tools.zach/dev/iconbg/internal/hexcolor"
	"tools.zach/dev/iconbg/internal/logger"
)

// ///////////////////////////////////////////////
// Outcome
// ///////////////////////////////////////////////

// Outcome records what happened to a single icon.
type Outcome int

const (
	// Processed means the icon was flattened and written.
	Processed Outcome = iota
	// SkippedMissing means the icon file did not exist.
	SkippedMissing
	// SkippedWrongMode means the icon has no alpha channel and was left untouched.
	SkippedWrongMode
)

// String returns the outcome name used in logs and test output.
func (o Outcome) String() string {
	switch o {
	case Processed:
		return "processed"
	case SkippedMissing:
		return "skipped-missing"
	case SkippedWrongMode:
		return "skipped-wrong-mode"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ///////////////////////////////////////////////
// Compositor
// ///////////////////////////////////////////////

// Compositor flattens icons onto a fixed background color.
type Compositor struct {
	// background is the opaque canvas color.
	background color.NRGBA
	// logger receives debug detail for each icon.
	logger *slog.Logger
	// encoder writes the flattened PNG.
	encoder png.Encoder
}

// New returns a Compositor for the given background. The alpha of bg is
// ignored; the canvas is always opaque. A nil logger uses [slog.Default].
func New(bg color.NRGBA, log *slog.Logger) *Compositor {
	if log == nil {
		log = slog.Default()
	}
	bg.A = 255
	return &Compositor{
		background: bg,
		logger:     log,
		encoder:    png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Background returns the canvas color.
func (c *Compositor) Background() color.NRGBA {
	return c.background
}

// Apply flattens the icon at inPath onto the background and writes it to
// outPath. Icons without an alpha channel, including images in another
// format saved under a PNG name, return [SkippedWrongMode] and neither file
// is touched. Data no decoder recognizes is an error wrapping [ErrNotPNG]. When inPath and outPath are the same the source
// is replaced in place. The output keeps the permissions of the input file.
func (c *Compositor) Apply(inPath, outPath string) (Outcome, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("read icon: %w", err)
	}

	mode, err := DetectMode(data)
	if errors.Is(err, ErrNotPNG) {
		if format, ok := foreignFormat(data); ok {
			c.logger.Debug("icon is not a PNG", "path", inPath, "format", format)
			return SkippedWrongMode, nil
		}
	}
	if err != nil {
		return 0, fmt.Errorf("inspect %s: %w", inPath, err)
	}
	logger.Trace(c.logger, "read icon header", "path", inPath, "mode", mode, "bytes", len(data))
	if !mode.Flattenable() {
		c.logger.Debug("icon has no alpha channel", "path", inPath, "mode", mode)
		return SkippedWrongMode, nil
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", inPath, err)
	}

	flat := Flatten(src, c.background)
	perm := atomicfile.PermOf(inPath, 0o644)
	err = atomicfile.WriteFunc(outPath, perm, func(w io.Writer) error {
		return c.encoder.Encode(w, flat)
	})
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", outPath, err)
	}

	b := flat.Bounds()
	c.logger.Debug("flattened icon",
		"in", inPath,
		"out", outPath,
		"size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"background", hexcolor.Hex(c.background),
	)
	return Processed, nil
}

// Flatten draws src over an opaque canvas filled with bg and returns the
// canvas. Fully transparent pixels take the background color, fully opaque
// pixels keep their color, and partially transparent pixels blend in
// proportion to their alpha. The result has the size of src with its origin
// at (0, 0).
func Flatten(src image.Image, bg color.NRGBA) *image.RGBA {
	bg.A = 255
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Over)
	return dst
}
