package manifest

// Manifest is the top-level output of a ditherthat batch run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures run-time parameters for diagnostics.
type BuildInfo struct {
	Workers       int   `json:"workers"`
	BlueNoiseMaps []int `json:"blue_noise_maps,omitempty"` // map sizes generated during the run
}

// Settings records the dithering parameters applied to an asset.
type Settings struct {
	Algorithm string  `json:"algorithm"`
	Level     int     `json:"level,omitempty"`
	Invert    bool    `json:"invert,omitempty"`
	MapSize   int     `json:"map_size,omitempty"`
	ListLen   int     `json:"list_len,omitempty"`
	Decay     float32 `json:"decay,omitempty"`
}

// Asset describes a single source image and its dithered output.
type Asset struct {
	Source      SourceInfo `json:"source"`
	Settings    Settings   `json:"settings"`
	Output      Output     `json:"output"`
	InkCoverage float64    `json:"ink_coverage"` // fraction of black pixels
}

// SourceInfo holds metadata about the source image.
type SourceInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
	Hash   string `json:"hash"` // xxhash64 of the source file
}

// Output is the encoded dithered image.
type Output struct {
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int64  `json:"size"`        // bytes on disk
	Hash        string `json:"hash"`        // first 16 hex chars of xxhash64
	Fingerprint string `json:"fingerprint"` // xxhash64 of the RGBA pixels
	Path        string `json:"path"`        // relative to base_path
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64   `json:"total_input_bytes"`
	TotalOutputBytes int64   `json:"total_output_bytes"`
	TotalAssets      int     `json:"total_assets"`
	MeanInkCoverage  float64 `json:"mean_ink_coverage"`
	Failed           int     `json:"failed,omitempty"` // sources that could not be processed
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
