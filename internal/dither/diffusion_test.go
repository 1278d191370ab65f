package dither

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKernel_WeightSums(t *testing.T) {
	for _, k := range []Kernel{FloydSteinberg, Simple2D, JarvisJudiceNinke} {
		if s := k.Sum(); math.Abs(float64(s)-1) > 1e-6 {
			t.Errorf("%s: weights sum to %v, want 1", k.Name, s)
		}
	}
	if s := Atkinson.Sum(); math.Abs(float64(s)-0.75) > 1e-6 {
		t.Errorf("atkinson: weights sum to %v, want 0.75", s)
	}
}

func TestKernel_TapCounts(t *testing.T) {
	want := map[string]int{
		FloydSteinberg.Name:    4,
		Simple2D.Name:          2,
		JarvisJudiceNinke.Name: 12,
		Atkinson.Name:          6,
	}
	for _, k := range []Kernel{FloydSteinberg, Simple2D, JarvisJudiceNinke, Atkinson} {
		if len(k.Taps) != want[k.Name] {
			t.Errorf("%s: %d taps, want %d", k.Name, len(k.Taps), want[k.Name])
		}
	}
}

func TestKernel_TapsPointForward(t *testing.T) {
	for _, k := range []Kernel{FloydSteinberg, Simple2D, JarvisJudiceNinke, Atkinson} {
		for _, tap := range k.Taps {
			if tap.DY < 0 || (tap.DY == 0 && tap.DX <= 0) {
				t.Errorf("%s: tap (%d,%d) points backwards", k.Name, tap.DX, tap.DY)
			}
		}
	}
}

func TestDiffuse_PreservesMeanLuminance(t *testing.T) {
	const w, h = 64, 64
	src := solidPixels(w, h, 128, 128, 128)
	// Linear luminance of sRGB 128.
	const target = 0.2159

	for _, k := range []Kernel{FloydSteinberg, Simple2D, JarvisJudiceNinke} {
		dst := make([]byte, len(src))
		if err := Diffuse(dst, src, w, h, k); err != nil {
			t.Fatal(err)
		}
		assertBilevel(t, k.Name, dst)
		frac := float64(countOn(dst)) / (w * h)
		if math.Abs(frac-target) > 0.05 {
			t.Errorf("%s: white fraction %.3f, want ~%.3f", k.Name, frac, target)
		}
	}
}

func TestDiffuse_AtkinsonLosesError(t *testing.T) {
	// Dropping a quarter of the error keeps dark mid-tones darker than
	// full error diffusion does.
	const w, h = 64, 64
	src := solidPixels(w, h, 128, 128, 128)
	fs := make([]byte, len(src))
	at := make([]byte, len(src))
	if err := Diffuse(fs, src, w, h, FloydSteinberg); err != nil {
		t.Fatal(err)
	}
	if err := Diffuse(at, src, w, h, Atkinson); err != nil {
		t.Fatal(err)
	}
	if countOn(at) >= countOn(fs) {
		t.Errorf("atkinson white pixels %d, floyd-steinberg %d; want fewer", countOn(at), countOn(fs))
	}
}

func TestDiffuse_FirstRowFloydSteinberg(t *testing.T) {
	// A 2x1 image at luminance ~0.216: the first pixel is black and pushes
	// 7/16 of its error right, which keeps the second pixel black too.
	src := solidPixels(2, 1, 128, 128, 128)
	dst := make([]byte, len(src))
	if err := Diffuse(dst, src, 2, 1, FloydSteinberg); err != nil {
		t.Fatal(err)
	}
	if countOn(dst) != 0 {
		t.Errorf("got %d white pixels, want 0", countOn(dst))
	}
}

func TestDiffuse_BrightPixelPushesDarkness(t *testing.T) {
	// 0.6 rounds up; its -0.4 error drags the 0.55 neighbour below 0.5
	// through the right-hand Simple2D tap.
	src := []byte{
		203, 203, 203, 255, // linear ~0.60
		196, 196, 196, 255, // linear ~0.55
	}
	dst := make([]byte, len(src))
	if err := Diffuse(dst, src, 2, 1, Simple2D); err != nil {
		t.Fatal(err)
	}
	if dst[0] != 255 || dst[4] != 0 {
		t.Errorf("got %v, want white then black", dst)
	}
}

func TestDiffuse_ClampsAfterEveryTap(t *testing.T) {
	// Simple2D over
	//
	//	  0 160 230      linear 0     0.352 0.791
	//	200 255 200             0.578 1     0.578
	//
	// (1,1) first receives +0.176 from above and is clamped back to 1.
	// The -0.211 from the left then leaves it at 0.789, so it passes on
	// -0.211 and (2,1) ends at ~0.456, black. Without the intermediate
	// clamp (1,1) would sit at 0.965 and (2,1) would come out white.
	src := []byte{
		0, 0, 0, 255, 160, 160, 160, 255, 230, 230, 230, 255,
		200, 200, 200, 255, 255, 255, 255, 255, 200, 200, 200, 255,
	}
	dst := make([]byte, len(src))
	if err := Diffuse(dst, src, 3, 2, Simple2D); err != nil {
		t.Fatal(err)
	}
	var got []bool
	for i := 0; i < len(dst); i += 4 {
		got = append(got, dst[i] == 255)
	}
	want := []bool{false, false, true, true, true, false}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("white pixels (-want +got):\n%s", d)
	}
}
