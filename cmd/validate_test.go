package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/manifest"
)

func validFixture(t *testing.T) (*manifest.Manifest, string) {
	t.Helper()
	dir := t.TempDir()
	data := []byte("not really a png")
	if err := os.WriteFile(filepath.Join(dir, "a.floyd.0123abcd.png"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	m := manifest.New("default")
	m.Assets["a"] = manifest.Asset{
		Source:   manifest.SourceInfo{Width: 100, Height: 50, Format: "png", Size: 1000, Hash: "x"},
		Settings: manifest.Settings{Algorithm: "floyd"},
		Output: manifest.Output{
			Format: "png", Width: 100, Height: 50, Size: int64(len(data)),
			Hash: "0123abcd0123abcd", Path: "a.floyd.0123abcd.png",
		},
		InkCoverage: 0.4,
	}
	m.ComputeStats()
	return m, dir
}

func TestValidateManifest_OK(t *testing.T) {
	m, dir := validFixture(t)
	if errs := validateManifest(m, dir); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateManifest_Problems(t *testing.T) {
	m, dir := validFixture(t)
	a := m.Assets["a"]
	a.Settings.Algorithm = "sierra"
	a.Output.Size = 999
	a.InkCoverage = 1.5
	m.Assets["a"] = a
	m.Assets["b"] = manifest.Asset{
		Source:   manifest.SourceInfo{Width: 10, Height: 10},
		Settings: manifest.Settings{Algorithm: "bayer"},
		Output:   manifest.Output{Format: "png", Width: 20, Height: 20, Hash: "h", Path: "missing.png"},
	}

	errs := strings.Join(validateManifest(m, dir), "\n")
	for _, want := range []string{
		`unknown algorithm "sierra"`,
		"size mismatch",
		"ink coverage",
		"larger than source",
		"file not found: missing.png",
		"stats.total_assets mismatch",
	} {
		if !strings.Contains(errs, want) {
			t.Errorf("missing %q in:\n%s", want, errs)
		}
	}
}

func TestValidateManifest_Version(t *testing.T) {
	m, dir := validFixture(t)
	m.Version = 7
	errs := validateManifest(m, dir)
	if len(errs) != 1 || !strings.Contains(errs[0], "version") {
		t.Errorf("errs = %v", errs)
	}
}

func TestDescribe(t *testing.T) {
	o := dither.DefaultOptions()
	o.Algorithm = dither.AlgBayer
	if got := describe(o); got != "bayer 8x8 invert=false" {
		t.Errorf("describe = %q", got)
	}
	o.Algorithm = dither.AlgRiemersma
	o.ListLen = 1000
	if got := describe(o); got != "riemersma list=256 decay=0.125" {
		t.Errorf("describe = %q", got)
	}
}
