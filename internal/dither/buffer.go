package dither

import (
	"errors"
	"fmt"
)

// ErrBufferSize is returned when a pixel buffer does not hold exactly
// width*height RGBA pixels.
var ErrBufferSize = errors.New("dither: buffer size does not match dimensions")

// checkBuffers validates geometry and returns the pixel count.
func checkBuffers(dst, src []byte, width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: negative dimensions %dx%d", ErrBufferSize, width, height)
	}
	n := width * height
	if len(src) != n*4 {
		return 0, fmt.Errorf("%w: src has %d bytes, want %d for %dx%d",
			ErrBufferSize, len(src), n*4, width, height)
	}
	if len(dst) != n*4 {
		return 0, fmt.Errorf("%w: dst has %d bytes, want %d for %dx%d",
			ErrBufferSize, len(dst), n*4, width, height)
	}
	return n, nil
}

// setPixel writes pixel i as opaque white (on) or opaque black.
func setPixel(dst []byte, i int, on bool) {
	var v byte
	if on {
		v = 255
	}
	p := dst[i*4 : i*4+4 : i*4+4]
	p[0] = v
	p[1] = v
	p[2] = v
	p[3] = 255
}

// InkCoverage reports the fraction of black pixels in a dithered buffer.
// An empty buffer has no ink.
func InkCoverage(pix []byte) float64 {
	n := len(pix) / 4
	if n == 0 {
		return 0
	}
	var black int
	for i := 0; i < n; i++ {
		if pix[i*4] == 0 {
			black++
		}
	}
	return float64(black) / float64(n)
}
