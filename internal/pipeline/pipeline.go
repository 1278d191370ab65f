// Package pipeline dithers every image in a directory tree in parallel.
package pipeline

import (
	"fmt"
	"os"
	"runtime"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/encoder"
	"github.com/alyonafuria/ditherthat/internal/manifest"
	"github.com/alyonafuria/ditherthat/internal/profile"
	"golang.org/x/sync/errgroup"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Profile   profile.Profile
	Workers   int
	Verbose   bool
	Quality   int // only used by lossy output formats
}

// Pipeline orchestrates image processing.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
	cache    *dither.ThresholdCache
}

// New creates a configured pipeline. cache may be shared between
// pipelines; nil gives the pipeline its own.
func New(cfg Config, cache *dither.ThresholdCache) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cache == nil {
		cache = dither.NewThresholdCache()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
		cache:    cache,
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[ditherthat] "+format+"\n", args...)
	}
}

// Run executes the batch and returns the manifest. Individual failures are
// reported on stderr; Run only fails when nothing could be processed.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	p.logf("%s", p.registry)

	enc, err := p.registry.Resolve(p.cfg.Profile.Format)
	if err != nil {
		return nil, err
	}

	if !enc.Lossless() {
		fmt.Fprintf(os.Stderr, "[ditherthat] warning: %s is lossy; outputs will not be pure black and white\n",
			enc.Format())
	}

	// Step 1: Scan for images.
	sources, err := ScanImages(p.cfg.InputDir, p.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	p.logf("found %d images", len(sources))

	// Blue-noise maps are built once, before the workers race for them.
	if p.cfg.Profile.Options.Algorithm == dither.AlgBlueNoise {
		_, n := p.cache.Map(p.cfg.Profile.Options.MapSize)
		p.logf("blue-noise map %dx%d ready", n, n)
	}

	// Step 2: Process images in parallel.
	results := make([]processResult, len(sources))
	var g errgroup.Group
	g.SetLimit(p.cfg.Workers)

	for i, src := range sources {
		g.Go(func() error {
			p.logf("processing: %s", src.Key)
			results[i] = processImage(src, p.cfg, enc, p.cache)
			if results[i].err == nil {
				p.logf("done: %s -> %s", src.Key, results[i].asset.Output.Path)
			}
			return nil
		})
	}
	_ = g.Wait()

	// Step 3: Collect results into manifest.
	m := manifest.New(p.cfg.Profile.Name)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[ditherthat] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[ditherthat] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:       p.cfg.Workers,
		BlueNoiseMaps: p.cache.Sizes(),
	}
	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}
