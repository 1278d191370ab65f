package dither

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBayerMatrix_Level0(t *testing.T) {
	m, side := BayerMatrix(0)
	if side != 2 {
		t.Fatalf("side = %d, want 2", side)
	}
	if d := cmp.Diff([]int{0, 2, 3, 1}, m); d != "" {
		t.Errorf("level 0 matrix (-want +got):\n%s", d)
	}
}

func TestBayerMatrix_Level1(t *testing.T) {
	m, side := BayerMatrix(1)
	want := []int{
		0, 2, 8, 10,
		3, 1, 11, 9,
		12, 14, 4, 6,
		15, 13, 7, 5,
	}
	if side != 4 {
		t.Fatalf("side = %d, want 4", side)
	}
	if d := cmp.Diff(want, m); d != "" {
		t.Errorf("level 1 matrix (-want +got):\n%s", d)
	}
}

func TestBayerMatrix_Permutation(t *testing.T) {
	for level := 0; level <= MaxBayerLevel; level++ {
		m, side := BayerMatrix(level)
		if side != 1<<(level+1) {
			t.Errorf("level %d: side = %d", level, side)
		}
		if len(m) != side*side {
			t.Fatalf("level %d: %d cells, want %d", level, len(m), side*side)
		}
		seen := make([]bool, len(m))
		for _, v := range m {
			if v < 0 || v >= len(m) || seen[v] {
				t.Fatalf("level %d: value %d repeated or out of range", level, v)
			}
			seen[v] = true
		}
	}
}

func TestBayerMatrix_LevelClamped(t *testing.T) {
	if _, side := BayerMatrix(-3); side != 2 {
		t.Errorf("level -3: side = %d, want 2", side)
	}
	if _, side := BayerMatrix(9); side != 64 {
		t.Errorf("level 9: side = %d, want 64", side)
	}
}

func TestBayerThresholds_Level0(t *testing.T) {
	th, _ := BayerThresholds(0, false)
	if d := cmp.Diff([]float32{0.125, 0.625, 0.875, 0.375}, th); d != "" {
		t.Errorf("thresholds (-want +got):\n%s", d)
	}
	inv, _ := BayerThresholds(0, true)
	if d := cmp.Diff([]float32{0.875, 0.375, 0.125, 0.625}, inv); d != "" {
		t.Errorf("inverted thresholds (-want +got):\n%s", d)
	}
}

func TestOrdered_MidGrayLevel0(t *testing.T) {
	// Linear luminance of sRGB 128 is ~0.216, above only the 0.125 cell.
	src := solidPixels(4, 4, 128, 128, 128)
	dst := make([]byte, len(src))
	if err := Ordered(dst, src, 4, 4, 0, false); err != nil {
		t.Fatal(err)
	}
	assertBilevel(t, "bayer", dst)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			on := dst[(y*4+x)*4] == 255
			want := x%2 == 0 && y%2 == 0
			if on != want {
				t.Errorf("(%d,%d): on=%v, want %v", x, y, on, want)
			}
		}
	}
	if n := countOn(dst); n != 4 {
		t.Errorf("on count = %d, want 4", n)
	}
}

func TestOrdered_InvertMidGray(t *testing.T) {
	src := solidPixels(4, 4, 128, 128, 128)
	dst := make([]byte, len(src))
	if err := Ordered(dst, src, 4, 4, 0, true); err != nil {
		t.Fatal(err)
	}
	// Inverted, the 0.125 threshold sits at (0,1) in each tile.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			on := dst[(y*4+x)*4] == 255
			want := x%2 == 0 && y%2 == 1
			if on != want {
				t.Errorf("(%d,%d): on=%v, want %v", x, y, on, want)
			}
		}
	}
}

func TestOrdered_TilesAcrossImage(t *testing.T) {
	src := gradientPixels(70, 9)
	dst := make([]byte, len(src))
	if err := Ordered(dst, src, 70, 9, 5, false); err != nil {
		t.Fatal(err)
	}
	assertBilevel(t, "bayer-64", dst)
}
