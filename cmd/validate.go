package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a ditherthat manifest and check referenced files exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	errs := validateManifest(m, filepath.Dir(manifestPath))
	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d assets, all files present\n", m.Stats.TotalAssets)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	seenPaths := map[string]string{}
	var inputBytes, outputBytes int64
	for key, asset := range m.Assets {
		inputBytes += asset.Source.Size
		outputBytes += asset.Output.Size

		if asset.Source.Width <= 0 || asset.Source.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid source dimensions %dx%d",
				key, asset.Source.Width, asset.Source.Height))
		}
		if _, err := dither.ParseAlgorithm(asset.Settings.Algorithm); err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: %v", key, err))
		}
		if asset.InkCoverage < 0 || asset.InkCoverage > 1 || math.IsNaN(asset.InkCoverage) {
			errs = append(errs, fmt.Sprintf("asset %q: ink coverage %.4f out of range", key, asset.InkCoverage))
		}

		out := asset.Output
		if out.Format == "" {
			errs = append(errs, fmt.Sprintf("asset %q: empty output format", key))
		}
		if out.Width <= 0 || out.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid output dimensions %dx%d",
				key, out.Width, out.Height))
		} else if out.Width > asset.Source.Width || out.Height > asset.Source.Height {
			errs = append(errs, fmt.Sprintf("asset %q: output %dx%d larger than source %dx%d",
				key, out.Width, out.Height, asset.Source.Width, asset.Source.Height))
		}
		if out.Hash == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing hash", key))
		}
		if out.Path == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing path", key))
			continue
		}

		if other, ok := seenPaths[out.Path]; ok {
			errs = append(errs, fmt.Sprintf("asset %q: path %q already used by %q", key, out.Path, other))
		}
		seenPaths[out.Path] = key

		info, err := os.Stat(filepath.Join(baseDir, out.Path))
		if err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: file not found: %s", key, out.Path))
		} else if out.Size > 0 && info.Size() != out.Size {
			errs = append(errs, fmt.Sprintf("asset %q: size mismatch: manifest=%d, disk=%d",
				key, out.Size, info.Size()))
		}
	}

	// Verify stats consistency.
	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, len(m.Assets)))
	}
	if m.Stats.TotalInputBytes != inputBytes {
		errs = append(errs, fmt.Sprintf("stats.total_input_bytes mismatch: %d != %d", m.Stats.TotalInputBytes, inputBytes))
	}
	if m.Stats.TotalOutputBytes != outputBytes {
		errs = append(errs, fmt.Sprintf("stats.total_output_bytes mismatch: %d != %d", m.Stats.TotalOutputBytes, outputBytes))
	}

	return errs
}
