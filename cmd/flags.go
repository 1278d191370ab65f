package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/profile"
	"github.com/spf13/cobra"
)

// ditherFlags are shared by the dither and batch commands. Unset flags
// leave the preset's value alone.
type ditherFlags struct {
	preset    string
	algorithm string
	level     int
	invert    bool
	mapSize   int
	listLen   int
	decay     float32
	width     int
	contrast  float64
	gamma     float64
	format    string
	quality   int
}

func (f *ditherFlags) register(cmd *cobra.Command) {
	def := dither.DefaultOptions()
	fs := cmd.Flags()
	fs.StringVarP(&f.preset, "preset", "p", "default",
		"device preset ("+strings.Join(profile.Names(), ", ")+")")
	fs.StringVarP(&f.algorithm, "algorithm", "a", "",
		"bayer, blue, simple, floyd, jjn, atkinson or riemersma (default from preset)")
	fs.IntVar(&f.level, "level", def.Level, "Bayer matrix level 0-5 (2^(level+1) square)")
	fs.BoolVar(&f.invert, "invert", false, "Bayer: invert the threshold matrix")
	fs.IntVar(&f.mapSize, "map-size", def.MapSize, "blue-noise map size (32, 64, 128, ...)")
	fs.IntVar(&f.listLen, "list-len", def.ListLen, "Riemersma error history length 8-256")
	fs.Float32Var(&f.decay, "decay", def.Decay, "Riemersma weight of the oldest error, 0-1")
	fs.IntVar(&f.width, "width", 0, "resize to this width before dithering (0 = preset)")
	fs.Float64Var(&f.contrast, "contrast", 0, "contrast adjustment in percent, -100..100")
	fs.Float64Var(&f.gamma, "gamma", 0, "gamma correction factor (>1 brightens)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: png, bmp, tiff, webp, avif, jpeg")
	fs.IntVarP(&f.quality, "quality", "q", 0, "quality 1-100 for lossy formats")
}

// resolve merges the preset with any explicitly set flags.
func (f *ditherFlags) resolve(cmd *cobra.Command) (profile.Profile, error) {
	if !profile.Known(f.preset) {
		fmt.Fprintf(os.Stderr, "[ditherthat] warning: unknown preset %q, using defaults\n", f.preset)
	}
	prof := profile.Get(f.preset)
	fs := cmd.Flags()

	if f.algorithm != "" {
		a, err := dither.ParseAlgorithm(f.algorithm)
		if err != nil {
			return prof, err
		}
		prof.Options.Algorithm = a
	}
	if fs.Changed("level") {
		prof.Options.Level = f.level
	}
	if fs.Changed("invert") {
		prof.Options.Invert = f.invert
	}
	if fs.Changed("map-size") {
		prof.Options.MapSize = f.mapSize
	}
	if fs.Changed("list-len") {
		prof.Options.ListLen = f.listLen
	}
	if fs.Changed("decay") {
		prof.Options.Decay = f.decay
	}
	if fs.Changed("width") {
		prof.Width = f.width
	}
	if fs.Changed("contrast") {
		prof.Contrast = f.contrast
	}
	if fs.Changed("gamma") {
		prof.Gamma = f.gamma
	}
	if f.format != "" {
		prof.Format = f.format
	}
	return prof, nil
}

// describe renders the effective parameters of the selected algorithm.
func describe(o dither.Options) string {
	switch o.Algorithm {
	case dither.AlgBayer:
		_, side := dither.BayerMatrix(o.Level)
		return fmt.Sprintf("bayer %dx%d invert=%v", side, side, o.Invert)
	case dither.AlgBlueNoise:
		n := dither.ClampMapSize(o.MapSize)
		return fmt.Sprintf("blue noise %dx%d", n, n)
	case dither.AlgRiemersma:
		n, r := dither.ClampRiemersma(o.ListLen, o.Decay)
		return fmt.Sprintf("riemersma list=%d decay=%.3f", n, r)
	}
	if k, ok := o.Algorithm.Kernel(); ok {
		return fmt.Sprintf("%s (%d taps, weight %.2f)", k.Name, len(k.Taps), k.Sum())
	}
	return o.Algorithm.String()
}
