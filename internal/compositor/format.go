package compositor

import (
	"bytes"
	"image"

	// Decoders for icons saved under a .png name in another format.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// foreignFormat reports the format of image data that is not a PNG but that
// a registered decoder recognizes, such as a JPEG saved as icon.png.
func foreignFormat(data []byte) (string, bool) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || format == "png" {
		return "", false
	}
	return format, true
}
