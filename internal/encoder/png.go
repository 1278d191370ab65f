package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// PNGEncoder encodes images to PNG using Go's standard library.
// Two-colour paletted input is written at one bit per pixel.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }
func (e *PNGEncoder) Available() bool   { return true }
func (e *PNGEncoder) Lossless() bool    { return true }

func (e *PNGEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(rawSize(img))

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rawSize estimates the unfiltered scanline bytes of img: one bit per
// pixel for a two-colour palette, eight otherwise.
func rawSize(img image.Image) int {
	b := img.Bounds()
	if p, ok := img.(*image.Paletted); ok && len(p.Palette) <= 2 {
		return ((b.Dx()+7)/8 + 1) * b.Dy()
	}
	return (b.Dx() + 1) * b.Dy()
}
