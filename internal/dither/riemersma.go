package dither

import (
	"math"

	"github.com/alyonafuria/ditherthat/internal/luminance"
)

// Riemersma parameter bounds and defaults.
const (
	MinHistory     = 8
	MaxHistory     = 256
	DefaultHistory = 16
	DefaultDecay   = 0.125
)

// ClampRiemersma maps listLen onto [MinHistory, MaxHistory] and r onto the
// open interval (0, 1): non-positive ratios become DefaultDecay, ratios of
// one or more become 0.99.
func ClampRiemersma(listLen int, r float32) (int, float32) {
	listLen = clampInt(listLen, MinHistory, MaxHistory)
	if r <= 0 || math.IsNaN(float64(r)) {
		r = DefaultDecay
	}
	if r >= 1 {
		r = 0.99
	}
	return listLen, r
}

// decayWeights returns w[j] = r^(j/(n-1)), falling from 1 for the newest
// error (j=0) to r for the oldest.
func decayWeights(n int, r float32) []float32 {
	w := make([]float32, n)
	for j := range w {
		var t float32
		if n > 1 {
			t = float32(j) / float32(n-1)
		}
		w[j] = float32(math.Pow(float64(r), float64(t)))
	}
	return w
}

// errorRing keeps the most recent quantization errors, newest first.
type errorRing struct {
	buf   []float32
	head  int // slot of the newest entry
	count int
}

func newErrorRing(size int) *errorRing {
	return &errorRing{buf: make([]float32, size), head: -1}
}

// push stores e as the newest entry, evicting the oldest when full.
func (r *errorRing) push(e float32) {
	r.head = (r.head + 1) % len(r.buf)
	r.buf[r.head] = e
	if r.count < len(r.buf) {
		r.count++
	}
}

// at returns the j-th newest entry; j < count.
func (r *errorRing) at(j int) float32 {
	pos := r.head - j
	if pos < 0 {
		pos += len(r.buf)
	}
	return r.buf[pos]
}

// correction is the weighted mean of the stored errors, normalized by the
// weights actually used.
func (r *errorRing) correction(w []float32) float32 {
	if r.count == 0 {
		return 0
	}
	var acc, sum float32
	for j := 0; j < r.count; j++ {
		acc += r.at(j) * w[j]
		sum += w[j]
	}
	if sum > 1e-8 {
		return acc / sum
	}
	return acc
}

// Riemersma dithers src into dst along a Hilbert curve, correcting each
// pixel by a decaying average of the last listLen quantization errors.
// listLen and the decay ratio r are clamped with ClampRiemersma.
func Riemersma(dst, src []byte, width, height, listLen int, r float32) error {
	n, err := checkBuffers(dst, src, width, height)
	if err != nil || n == 0 {
		return err
	}
	listLen, r = ClampRiemersma(listLen, r)

	lum := luminance.Buffer(src, n)
	weights := decayWeights(listLen, r)
	history := newErrorRing(listLen)

	WalkHilbert(width, height, func(x, y int) {
		i := y*width + x
		v := lum[i] + history.correction(weights)
		on := v > 0.5
		var quant float32
		if on {
			quant = 1
		}
		history.push(v - quant)
		setPixel(dst, i, on)
	})
	return nil
}
