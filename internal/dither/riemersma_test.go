package dither

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHilbertXY_FirstCells(t *testing.T) {
	var got [][2]int
	for d := uint64(0); d < 4; d++ {
		x, y := HilbertXY(2, d)
		got = append(got, [2]int{x, y})
	}
	want := [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("2x2 curve (-want +got):\n%s", d)
	}
}

func TestHilbertXY_Continuous(t *testing.T) {
	const n = 32
	px, py := HilbertXY(n, 0)
	for d := uint64(1); d < n*n; d++ {
		x, y := HilbertXY(n, d)
		if dist := abs(x-px) + abs(y-py); dist != 1 {
			t.Fatalf("step %d: (%d,%d) -> (%d,%d) is not a unit move", d, px, py, x, y)
		}
		px, py = x, y
	}
}

func TestWalkHilbert_VisitsEachPixelOnce(t *testing.T) {
	for _, s := range [][2]int{{8, 8}, {1, 1}, {5, 3}, {3, 17}, {33, 2}} {
		w, h := s[0], s[1]
		seen := make(map[[2]int]int)
		WalkHilbert(w, h, func(x, y int) {
			if x < 0 || x >= w || y < 0 || y >= h {
				t.Fatalf("%dx%d: out of bounds (%d,%d)", w, h, x, y)
			}
			seen[[2]int{x, y}]++
		})
		if len(seen) != w*h {
			t.Errorf("%dx%d: visited %d pixels, want %d", w, h, len(seen), w*h)
		}
		for p, c := range seen {
			if c != 1 {
				t.Errorf("%dx%d: %v visited %d times", w, h, p, c)
			}
		}
	}
}

func TestHilbertXY_LargeGrid(t *testing.T) {
	const n = 1 << 16
	last := uint64(n)*uint64(n) - 1
	if x, y := HilbertXY(n, last); x != n-1 || y != 0 {
		t.Errorf("last cell of %d grid = (%d,%d), want (%d,0)", n, x, y, n-1)
	}
	// Halfway along, the curve enters the bottom-right quadrant.
	if x, y := HilbertXY(n, last/2+1); x < n/2 || y < n/2 {
		t.Errorf("cell 2^31 of %d grid = (%d,%d), want bottom-right quadrant", n, x, y)
	}
}

func TestWalkHilbert_WideStrip(t *testing.T) {
	// Wider than 32768: the enclosing square has 2^32 cells.
	const w = 32769
	seen := make([]bool, w)
	visited := 0
	WalkHilbert(w, 1, func(x, y int) {
		if y != 0 || x < 0 || x >= w {
			t.Fatalf("out of bounds (%d,%d)", x, y)
		}
		if seen[x] {
			t.Fatalf("(%d,0) visited twice", x)
		}
		seen[x] = true
		visited++
	})
	if visited != w {
		t.Fatalf("visited %d of %d pixels", visited, w)
	}
}

func TestRiemersma_WideStripIsWritten(t *testing.T) {
	const w = 32769
	src := solidPixels(w, 1, 255, 255, 255)
	dst := make([]byte, len(src))
	for i := range dst {
		dst[i] = 7
	}
	if err := Riemersma(dst, src, w, 1, DefaultHistory, DefaultDecay); err != nil {
		t.Fatal(err)
	}
	assertBilevel(t, "riemersma 32769x1", dst)
	if countOn(dst) != w {
		t.Errorf("white input gave %d white pixels, want %d", countOn(dst), w)
	}
}

func TestWalkHilbert_Empty(t *testing.T) {
	WalkHilbert(0, 4, func(x, y int) { t.Fatal("called for empty image") })
}

func TestNextPow2(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {8, 8}, {9, 16}, {1000, 1024},
	} {
		if got := nextPow2(tc.in); got != tc.want {
			t.Errorf("nextPow2(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClampRiemersma(t *testing.T) {
	for _, tc := range []struct {
		n     int
		r     float32
		wantN int
		wantR float32
	}{
		{16, 0.5, 16, 0.5},
		{1, 0.5, MinHistory, 0.5},
		{1000, 0.5, MaxHistory, 0.5},
		{16, 0, 16, DefaultDecay},
		{16, -2, 16, DefaultDecay},
		{16, 1, 16, 0.99},
		{16, 7, 16, 0.99},
		{16, float32(math.NaN()), 16, DefaultDecay},
	} {
		n, r := ClampRiemersma(tc.n, tc.r)
		if n != tc.wantN || r != tc.wantR {
			t.Errorf("ClampRiemersma(%d, %v) = %d, %v; want %d, %v",
				tc.n, tc.r, n, r, tc.wantN, tc.wantR)
		}
	}
}

func TestDecayWeights(t *testing.T) {
	w := decayWeights(16, 0.125)
	if w[0] != 1 {
		t.Errorf("newest weight = %v, want 1", w[0])
	}
	if math.Abs(float64(w[15])-0.125) > 1e-6 {
		t.Errorf("oldest weight = %v, want 0.125", w[15])
	}
	for j := 1; j < len(w); j++ {
		if w[j] >= w[j-1] {
			t.Fatalf("weights not decreasing at %d", j)
		}
	}
}

func TestErrorRing_EvictsOldest(t *testing.T) {
	r := newErrorRing(3)
	for _, e := range []float32{1, 2, 3, 4} {
		r.push(e)
	}
	if r.count != 3 {
		t.Fatalf("count = %d", r.count)
	}
	got := []float32{r.at(0), r.at(1), r.at(2)}
	if d := cmp.Diff([]float32{4, 3, 2}, got); d != "" {
		t.Errorf("ring contents newest first (-want +got):\n%s", d)
	}
}

func TestErrorRing_CorrectionUsesPartialWeights(t *testing.T) {
	r := newErrorRing(4)
	w := []float32{1, 0.5, 0.25, 0.125}
	if c := r.correction(w); c != 0 {
		t.Errorf("empty ring correction = %v", c)
	}
	r.push(0.3)
	r.push(-0.6)
	// (-0.6*1 + 0.3*0.5) / 1.5
	if c := r.correction(w); math.Abs(float64(c)+0.3) > 1e-6 {
		t.Errorf("correction = %v, want -0.3", c)
	}
}

func TestRiemersma_PreservesMeanLuminance(t *testing.T) {
	const w, h = 64, 64
	src := solidPixels(w, h, 128, 128, 128)
	dst := make([]byte, len(src))
	if err := Riemersma(dst, src, w, h, DefaultHistory, DefaultDecay); err != nil {
		t.Fatal(err)
	}
	assertBilevel(t, "riemersma", dst)
	frac := float64(countOn(dst)) / (w * h)
	if math.Abs(frac-0.2159) > 0.03 {
		t.Errorf("white fraction %.3f, want ~0.216", frac)
	}
}

func TestRiemersma_ClampsParameters(t *testing.T) {
	src := gradientPixels(20, 11)
	a := make([]byte, len(src))
	b := make([]byte, len(src))
	if err := Riemersma(a, src, 20, 11, 2, -1); err != nil {
		t.Fatal(err)
	}
	if err := Riemersma(b, src, 20, 11, MinHistory, DefaultDecay); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Error("out-of-range parameters were not clamped to the same values")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
