package dither

import "testing"

// ─── test image generators ───────────────────────────────────

func solidPixels(w, h int, r, g, b uint8) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = 255
	}
	return pix
}

func gradientPixels(w, h int) []byte {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i] = uint8((x * 251) % 256)
			pix[i+1] = uint8((y * 179) % 256)
			pix[i+2] = uint8(((x + y) * 113) % 256)
			pix[i+3] = uint8((x * 7) % 256)
		}
	}
	return pix
}

func countOn(pix []byte) int {
	n := 0
	for i := 0; i < len(pix); i += 4 {
		if pix[i] == 255 {
			n++
		}
	}
	return n
}

// assertBilevel fails unless every pixel is opaque black or opaque white.
func assertBilevel(t *testing.T, name string, pix []byte) {
	t.Helper()
	for i := 0; i < len(pix); i += 4 {
		r, g, b, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if r != g || g != b || (r != 0 && r != 255) || a != 255 {
			t.Fatalf("%s: pixel %d = (%d,%d,%d,%d), want black or white",
				name, i/4, r, g, b, a)
		}
	}
}

// allOptions returns one Options value per algorithm.
func allOptions() []Options {
	var out []Options
	for _, a := range Algorithms() {
		o := DefaultOptions()
		o.Algorithm = a
		o.MapSize = 16
		out = append(out, o)
	}
	return out
}
