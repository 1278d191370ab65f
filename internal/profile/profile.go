// Package profile holds named presets for common output devices.
package profile

import (
	"sort"

	"github.com/alyonafuria/ditherthat/internal/dither"
)

// Profile bundles a dithering configuration with output preparation.
type Profile struct {
	Name     string
	Options  dither.Options
	Width    int     // target width in pixels, 0 keeps the source width
	Contrast float64 // percentage passed to imaging.AdjustContrast, 0 = none
	Gamma    float64 // imaging.AdjustGamma factor, 0 or 1 = none
	Format   string  // output format name
}

func opts(a dither.Algorithm, tweak func(*dither.Options)) dither.Options {
	o := dither.DefaultOptions()
	o.Algorithm = a
	if tweak != nil {
		tweak(&o)
	}
	return o
}

// Built-in profiles.
var profiles = map[string]Profile{
	"default": {
		Name:    "default",
		Options: opts(dither.AlgFloydSteinberg, nil),
		Format:  "png",
	},
	"thermal-58mm": {
		Name:     "thermal-58mm",
		Options:  opts(dither.AlgAtkinson, nil),
		Width:    384, // 48 mm printable at 203 dpi
		Contrast: 10,
		Format:   "png",
	},
	"thermal-80mm": {
		Name:     "thermal-80mm",
		Options:  opts(dither.AlgAtkinson, nil),
		Width:    576,
		Contrast: 10,
		Format:   "png",
	},
	"eink": {
		Name:    "eink",
		Options: opts(dither.AlgBlueNoise, func(o *dither.Options) { o.MapSize = 64 }),
		Gamma:   1.2,
		Format:  "png",
	},
	"newsprint": {
		Name:    "newsprint",
		Options: opts(dither.AlgBayer, func(o *dither.Options) { o.Level = 3 }),
		Format:  "tiff",
	},
	"retro-mac": {
		Name:    "retro-mac",
		Options: opts(dither.AlgAtkinson, nil),
		Width:   512,
		Format:  "png",
	},
	"hilbert": {
		Name: "hilbert",
		Options: opts(dither.AlgRiemersma, func(o *dither.Options) {
			o.ListLen = 32
			o.Decay = 0.1
		}),
		Format: "png",
	},
}

// Get returns a profile by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["default"]
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names lists the built-in profiles alphabetically.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TargetSize returns the output dimensions for a source of srcW×srcH,
// preserving aspect ratio. Images are never upscaled.
func (p Profile) TargetSize(srcW, srcH int) (int, int) {
	if p.Width <= 0 || p.Width >= srcW || srcW <= 0 {
		return srcW, srcH
	}
	h := int(float64(srcH) * float64(p.Width) / float64(srcW))
	if h < 1 {
		h = 1
	}
	return p.Width, h
}
