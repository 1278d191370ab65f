package dither

// HilbertXY maps distance d along a Hilbert curve filling an n×n grid to
// its (x, y) cell. n must be a power of two.
func HilbertXY(n int, d uint64) (x, y int) {
	t := d
	for s := 1; s < n; s <<= 1 {
		rx := int(1 & (t / 2))
		ry := int(1 & (t ^ uint64(rx)))
		x, y = hilbertRotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}

// hilbertRotate flips and transposes a quadrant.
func hilbertRotate(s, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// nextPow2 returns the smallest power of two >= v (1 for v <= 1).
func nextPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}

// WalkHilbert calls fn for every pixel of a width×height image in Hilbert
// curve order. The curve covers the enclosing power-of-two square; cells
// outside the image are skipped, so each pixel is visited exactly once.
//
// Every run of s² curve steps starting at a multiple of s² fills an aligned
// s×s block, so blocks lying wholly outside the image are stepped over in
// one move. A 1-pixel-high strip costs O(width·log n), not n².
func WalkHilbert(width, height int, fn func(x, y int)) {
	if width <= 0 || height <= 0 {
		return
	}
	n := nextPow2(max(width, height))
	total := uint64(n) * uint64(n)
	for d := uint64(0); d < total; {
		s := n
		for d%(uint64(s)*uint64(s)) != 0 {
			s >>= 1
		}
		x, y := HilbertXY(n, d)
		for {
			if x&^(s-1) >= width || y&^(s-1) >= height {
				d += uint64(s) * uint64(s)
				break
			}
			if s == 1 {
				fn(x, y)
				d++
				break
			}
			s >>= 1
		}
	}
}
