package dither

import (
	"fmt"
	"strings"
)

// Algorithm selects a dithering strategy.
type Algorithm int

const (
	AlgBayer Algorithm = iota
	AlgBlueNoise
	AlgSimple2D
	AlgFloydSteinberg
	AlgJarvisJudiceNinke
	AlgAtkinson
	AlgRiemersma

	algorithmCount
)

var algorithmNames = [algorithmCount]string{
	"bayer", "blue", "simple", "floyd", "jjn", "atkinson", "riemersma",
}

// Long-form and alternate spellings accepted by ParseAlgorithm.
var algorithmAliases = map[string]Algorithm{
	"ordered":             AlgBayer,
	"bluenoise":           AlgBlueNoise,
	"blue-noise":          AlgBlueNoise,
	"simple2d":            AlgSimple2D,
	"floyd-steinberg":     AlgFloydSteinberg,
	"floydsteinberg":      AlgFloydSteinberg,
	"fs":                  AlgFloydSteinberg,
	"jarvis-judice-ninke": AlgJarvisJudiceNinke,
	"jarvis":              AlgJarvisJudiceNinke,
	"hilbert":             AlgRiemersma,
}

// String returns the short name of the algorithm.
func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

// Kernel returns the diffusion kernel of an error-diffusion algorithm.
func (a Algorithm) Kernel() (Kernel, bool) {
	switch a {
	case AlgSimple2D:
		return Simple2D, true
	case AlgFloydSteinberg:
		return FloydSteinberg, true
	case AlgJarvisJudiceNinke:
		return JarvisJudiceNinke, true
	case AlgAtkinson:
		return Atkinson, true
	}
	return Kernel{}, false
}

// ParseAlgorithm resolves a short name or alias, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (want one of %s)",
		name, strings.Join(algorithmNames[:], ", "))
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, algorithmCount)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// Options carries the parameters of every algorithm; each algorithm reads
// only its own fields.
type Options struct {
	Algorithm Algorithm
	Level     int     // Bayer refinement level, 0..5
	Invert    bool    // Bayer: use 1-threshold
	MapSize   int     // blue-noise map side, 0 for default
	ListLen   int     // Riemersma error history length, 8..256
	Decay     float32 // Riemersma oldest/newest weight ratio, (0,1)
}

// DefaultOptions returns Floyd-Steinberg with sensible defaults for the
// parameters of the other algorithms.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgFloydSteinberg,
		Level:     2,
		MapSize:   DefaultMapSize,
		ListLen:   DefaultHistory,
		Decay:     DefaultDecay,
	}
}

// Apply dithers src into dst with the algorithm selected in opts. cache
// backs the blue-noise maps; nil selects DefaultCache.
func Apply(dst, src []byte, width, height int, opts Options, cache *ThresholdCache) error {
	switch opts.Algorithm {
	case AlgBayer:
		return Ordered(dst, src, width, height, opts.Level, opts.Invert)
	case AlgBlueNoise:
		return BlueNoise(dst, src, width, height, opts.MapSize, cache)
	case AlgRiemersma:
		return Riemersma(dst, src, width, height, opts.ListLen, opts.Decay)
	}
	if k, ok := opts.Algorithm.Kernel(); ok {
		return Diffuse(dst, src, width, height, k)
	}
	return fmt.Errorf("dither: unsupported algorithm %v", opts.Algorithm)
}
