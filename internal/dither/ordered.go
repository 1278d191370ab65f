package dither

import "github.com/alyonafuria/ditherthat/internal/luminance"

// MaxBayerLevel is the deepest matrix refinement, giving a 64x64 matrix.
const MaxBayerLevel = 5

// BayerMatrix builds the recursive Bayer index matrix for level, clamped to
// [0, MaxBayerLevel]. The matrix is returned row-major with its side length,
// which is 2^(level+1). It holds every integer in [0, side²) exactly once.
func BayerMatrix(level int) (m []int, side int) {
	level = clampInt(level, 0, MaxBayerLevel)

	m = []int{
		0, 2,
		3, 1,
	}
	side = 2
	for l := 0; l < level; l++ {
		next := make([]int, side*side*4)
		ns := side * 2
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				v := 4 * m[y*side+x]
				top := (2*y)*ns + 2*x
				bot := top + ns
				next[top] = v + 0
				next[top+1] = v + 2
				next[bot] = v + 3
				next[bot+1] = v + 1
			}
		}
		m, side = next, ns
	}
	return m, side
}

// BayerThresholds returns the normalized thresholds (v+0.5)/side² of the
// level's Bayer matrix, optionally inverted.
func BayerThresholds(level int, invert bool) (t []float32, side int) {
	m, side := BayerMatrix(level)
	denom := float32(side * side)
	t = make([]float32, len(m))
	for i, v := range m {
		th := (float32(v) + 0.5) / denom
		if invert {
			th = 1 - th
		}
		t[i] = th
	}
	return t, side
}

// Ordered dithers src into dst against a tiled Bayer matrix. A pixel is
// white iff its luminance strictly exceeds the threshold at its cell.
func Ordered(dst, src []byte, width, height, level int, invert bool) error {
	n, err := checkBuffers(dst, src, width, height)
	if err != nil || n == 0 {
		return err
	}

	th, side := BayerThresholds(level, invert)
	thresholdTiled(dst, src, width, height, th, side)
	return nil
}

// thresholdTiled compares each pixel against a side×side threshold map
// repeated across the image.
func thresholdTiled(dst, src []byte, width, height int, th []float32, side int) {
	for y := 0; y < height; y++ {
		row := th[(y%side)*side : (y%side+1)*side]
		for x := 0; x < width; x++ {
			i := y*width + x
			lum := luminance.Of(src[i*4], src[i*4+1], src[i*4+2])
			setPixel(dst, i, lum > row[x%side])
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
