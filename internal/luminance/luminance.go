// Package luminance converts 8-bit sRGB pixels to linear-light luminance.
//
// All values are float32: the dithering engines only ever compare against
// thresholds in [0,1], and float32 keeps the per-image scratch buffers at
// 4 bytes per pixel.
package luminance

import "math"

// BT.709 luminance weights for linear R, G, B.
const (
	WeightR = 0.2126
	WeightG = 0.7152
	WeightB = 0.0722
)

// linear8 maps an 8-bit sRGB channel value to linear light.
// 256 × 4 bytes, filled at init.
var linear8 [256]float32

func init() {
	for i := 0; i < 256; i++ {
		linear8[i] = SRGBToLinear(float32(i) / 255)
	}
}

// SRGBToLinear undoes the sRGB transfer curve for v in [0,1].
func SRGBToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow(float64((v+0.055)/1.055), 2.4))
}

// Linear8 returns the linear-light value of an 8-bit sRGB channel.
func Linear8(c uint8) float32 {
	return linear8[c]
}

// Of returns the clamped linear luminance of an sRGB colour.
func Of(r, g, b uint8) float32 {
	return Clamp01(WeightR*Linear8(r) + WeightG*Linear8(g) + WeightB*Linear8(b))
}

// Buffer computes the luminance of the first n RGBA pixels of pix.
// Alpha is ignored. The returned slice belongs to the caller.
func Buffer(pix []byte, n int) []float32 {
	lum := make([]float32, n)
	for i := range lum {
		p := pix[i*4 : i*4+3 : i*4+3]
		lum[i] = Of(p[0], p[1], p[2])
	}
	return lum
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
