// Package images normalizes uploaded pictures before they hit storage:
// bounded width, fixed output format, fixed recompression quality.
package images

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"
)

const (
	// MaxWidth bounds the stored image width; larger uploads are downscaled
	// preserving aspect ratio, smaller ones are left alone (never upscaled).
	MaxWidth = 1280

	// JPEGQuality is the fixed recompression target for stored images.
	JPEGQuality = 80
)

// Normalize decodes an uploaded image (JPEG, PNG, GIF, the formats imaging
// registers), downscales it to MaxWidth when needed and re-encodes it as
// JPEG. It returns the encoded bytes ready for storage.
func Normalize(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > MaxWidth {
		img = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
