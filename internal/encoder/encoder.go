// Package encoder writes dithered images to disk formats.
//
// Dithered output is two-tone, so it favours lossless formats that keep
// the palette: PNG stores it at one bit per pixel, BMP and TIFF as an
// 8-bit two-entry palette. Lossy formats smear the dot pattern with
// intermediate grays and are only offered for consumers that require them.
package encoder

import (
	"image"
)

// Encoder encodes a dithered image to a specific file format.
type Encoder interface {
	// Format returns the output format name (e.g. "png", "bmp", "webp").
	Format() string

	// Encode converts the image to bytes. quality (1-100) only matters
	// to lossy formats.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string

	// Lossless reports whether every output pixel stays pure black or
	// pure white after a decode.
	Lossless() bool
}
