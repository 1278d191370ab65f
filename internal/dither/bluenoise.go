package dither

import (
	"math"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Blue-noise map sizes.
const (
	DefaultMapSize = 64
	MinMapSize     = 2
	MaxMapSize     = 256
)

// Void-and-cluster parameters.
const (
	bnSeed       = 1234567
	bnBlurRadius = 3
	bnBlurSigma  = 1.5
)

// ClampMapSize maps a requested blue-noise size onto the supported range.
// Non-positive sizes select DefaultMapSize.
func ClampMapSize(size int) int {
	if size <= 0 {
		return DefaultMapSize
	}
	return clampInt(size, MinMapSize, MaxMapSize)
}

// wangHash is Thomas Wang's 32-bit integer hash. It seeds the initial
// pattern and breaks ties, so the generated maps are identical on every
// platform and every run.
func wangHash(x uint32) uint32 {
	x = (x ^ 61) ^ (x >> 16)
	x = x + (x << 3)
	x = x ^ (x >> 4)
	x = x * 0x27d4eb2d
	x = x ^ (x >> 15)
	return x
}

// GenerateBlueNoise synthesizes a size×size blue-noise threshold map with
// the void-and-cluster method on a torus. The result is row-major and holds
// every value k/size² for k in [0, size²) exactly once. size is clamped
// with ClampMapSize.
//
// Each step re-blurs the full pattern, so the cost grows with size⁴; use a
// ThresholdCache rather than calling this per image.
func GenerateBlueNoise(size int) []float32 {
	n := ClampMapSize(size)
	total := n * n

	out := make([]float32, total)
	pattern := make([]float32, total)
	tmp := make([]float32, total)
	blurred := make([]float32, total)

	ones := 0
	for i := range pattern {
		if wangHash(bnSeed+uint32(i))&1 != 0 {
			pattern[i] = 1
			ones++
		}
	}
	seed := slices.Clone(pattern)

	g := gaussianKernel(bnBlurRadius, bnBlurSigma)
	rank := total - 1

	// Cluster removal: the tightest ON cell gets the highest remaining rank.
	for ones > 0 {
		blurWrap(pattern, tmp, blurred, n, g)
		best, bestV := -1, float32(-1e9)
		for i, p := range pattern {
			if p <= 0.5 {
				continue
			}
			v := blurred[i]
			if v > bestV || (v == bestV && wangHash(uint32(i))&1 != 0) {
				best, bestV = i, v
			}
		}
		if best < 0 {
			break
		}
		out[best] = float32(rank) / float32(total)
		pattern[best] = 0
		ones--
		rank--
	}

	// Void filling starts again from the seed, whose OFF cells are exactly
	// the unranked ones: the emptiest gets the next rank down.
	copy(pattern, seed)
	for rank >= 0 {
		blurWrap(pattern, tmp, blurred, n, g)
		best, bestV := -1, float32(1e9)
		for i, p := range pattern {
			if p >= 0.5 {
				continue
			}
			v := blurred[i]
			if v < bestV || (v == bestV && wangHash(uint32(i))&1 != 0) {
				best, bestV = i, v
			}
		}
		if best < 0 {
			break
		}
		out[best] = float32(rank) / float32(total)
		pattern[best] = 1
		rank--
	}

	return out
}

// gaussianKernel returns a normalized 1-D Gaussian of 2*radius+1 taps.
func gaussianKernel(radius int, sigma float32) []float32 {
	k := make([]float32, 2*radius+1)
	var sum float32
	for i := -radius; i <= radius; i++ {
		v := float32(math.Exp(float64(-float32(i*i) / (2 * sigma * sigma))))
		k[i+radius] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// blurWrap convolves the n×n grid in with the separable kernel k on a torus.
// tmp holds the horizontal pass.
func blurWrap(in, tmp, out []float32, n int, k []float32) {
	radius := len(k) / 2
	for y := 0; y < n; y++ {
		row := in[y*n : (y+1)*n]
		for x := 0; x < n; x++ {
			var acc float32
			for t := -radius; t <= radius; t++ {
				acc += row[wrap(x+t, n)] * k[t+radius]
			}
			tmp[y*n+x] = acc
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			var acc float32
			for t := -radius; t <= radius; t++ {
				acc += tmp[wrap(y+t, n)*n+x] * k[t+radius]
			}
			out[y*n+x] = acc
		}
	}
}

// wrap reduces v into [0, n) for |v| < n·k.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// ThresholdCache holds generated blue-noise maps keyed by size.
//
// Published maps are never mutated, so callers may read them concurrently
// without holding any lock. Concurrent first requests for the same size
// share a single generation.
type ThresholdCache struct {
	mu    sync.RWMutex
	maps  map[int][]float32
	group singleflight.Group
}

// NewThresholdCache returns an empty cache.
func NewThresholdCache() *ThresholdCache {
	return &ThresholdCache{maps: make(map[int][]float32)}
}

// DefaultCache is shared by callers that do not manage their own cache.
var DefaultCache = NewThresholdCache()

// Map returns the blue-noise map for size (clamped with ClampMapSize) and
// the effective side length. The slice must not be modified.
func (c *ThresholdCache) Map(size int) ([]float32, int) {
	n := ClampMapSize(size)

	c.mu.RLock()
	m, ok := c.maps[n]
	c.mu.RUnlock()
	if ok {
		return m, n
	}

	v, _, _ := c.group.Do(strconv.Itoa(n), func() (any, error) {
		c.mu.RLock()
		m, ok := c.maps[n]
		c.mu.RUnlock()
		if ok {
			return m, nil
		}
		m = GenerateBlueNoise(n)
		c.mu.Lock()
		c.maps[n] = m
		c.mu.Unlock()
		return m, nil
	})
	return v.([]float32), n
}

// Sizes lists the sizes currently cached, ascending.
func (c *ThresholdCache) Sizes() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sizes := make([]int, 0, len(c.maps))
	for n := range c.maps {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	return sizes
}

// Reset drops every cached map. Maps already handed out stay valid.
func (c *ThresholdCache) Reset() {
	c.mu.Lock()
	c.maps = make(map[int][]float32)
	c.mu.Unlock()
}

// BlueNoise dithers src into dst against a tiled blue-noise threshold map
// of the given size, taken from cache (DefaultCache when nil). A pixel is
// white iff its luminance strictly exceeds its threshold.
func BlueNoise(dst, src []byte, width, height, size int, cache *ThresholdCache) error {
	n, err := checkBuffers(dst, src, width, height)
	if err != nil || n == 0 {
		return err
	}
	if cache == nil {
		cache = DefaultCache
	}

	th, side := cache.Map(size)
	thresholdTiled(dst, src, width, height, th, side)
	return nil
}
