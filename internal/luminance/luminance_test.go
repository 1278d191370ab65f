package luminance

import (
	"math"
	"testing"
)

func TestSRGBToLinear_Endpoints(t *testing.T) {
	if v := SRGBToLinear(0); v != 0 {
		t.Errorf("SRGBToLinear(0) = %v, want 0", v)
	}
	if v := SRGBToLinear(1); math.Abs(float64(v)-1) > 1e-6 {
		t.Errorf("SRGBToLinear(1) = %v, want 1", v)
	}
}

func TestSRGBToLinear_LinearSegment(t *testing.T) {
	v := SRGBToLinear(0.04)
	want := float32(0.04 / 12.92)
	if math.Abs(float64(v-want)) > 1e-7 {
		t.Errorf("linear segment: got %v, want %v", v, want)
	}
}

func TestSRGBToLinear_Monotonic(t *testing.T) {
	prev := float32(-1)
	for c := 0; c < 256; c++ {
		v := Linear8(uint8(c))
		if v < prev {
			t.Fatalf("Linear8 not monotonic at %d: %v < %v", c, v, prev)
		}
		prev = v
	}
}

func TestOf_MidGray(t *testing.T) {
	// sRGB 128 is about 21.6% linear light.
	v := Of(128, 128, 128)
	if v < 0.21 || v > 0.22 {
		t.Errorf("mid-gray luminance = %v, want ~0.216", v)
	}
}

func TestOf_Range(t *testing.T) {
	if v := Of(0, 0, 0); v != 0 {
		t.Errorf("black = %v", v)
	}
	if v := Of(255, 255, 255); v < 0.9999 || v > 1 {
		t.Errorf("white = %v", v)
	}
	// Green dominates.
	if Of(0, 255, 0) <= Of(255, 0, 0) || Of(255, 0, 0) <= Of(0, 0, 255) {
		t.Error("channel weights out of order")
	}
}

func TestBuffer_IgnoresAlpha(t *testing.T) {
	pix := []byte{
		255, 255, 255, 0,
		0, 0, 0, 255,
	}
	lum := Buffer(pix, 2)
	if len(lum) != 2 {
		t.Fatalf("len = %d", len(lum))
	}
	if lum[0] < 0.9999 {
		t.Errorf("transparent white = %v, want 1", lum[0])
	}
	if lum[1] != 0 {
		t.Errorf("opaque black = %v, want 0", lum[1])
	}
}

func TestClamp01(t *testing.T) {
	for _, tc := range []struct{ in, want float32 }{
		{-0.5, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {1.5, 1},
	} {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func BenchmarkBuffer_512(b *testing.B) {
	pix := make([]byte, 512*512*4)
	for i := range pix {
		pix[i] = uint8(i * 31)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Buffer(pix, 512*512)
	}
}
