package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alyonafuria/ditherthat/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a batch output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Preset:           %s\n", m.Profile)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
		if len(m.BuildInfo.BlueNoiseMaps) > 0 {
			fmt.Printf("  Blue-noise maps:  %v\n", m.BuildInfo.BlueNoiseMaps)
		}
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	if s.Failed > 0 {
		fmt.Printf("  Failed:           %d\n", s.Failed)
	}
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalInputBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
		fmt.Printf("  Compression:      %.1f%% of original\n", ratio)
	}
	fmt.Printf("  Mean ink:         %.1f%%\n", s.MeanInkCoverage*100)
	fmt.Println()

	// Per-algorithm breakdown.
	type algoStat struct {
		count int
		bytes int64
		ink   float64
	}
	algoStats := map[string]algoStat{}
	formats := map[string]int{}
	for _, a := range m.Assets {
		as := algoStats[a.Settings.Algorithm]
		as.count++
		as.bytes += a.Output.Size
		as.ink += a.InkCoverage
		algoStats[a.Settings.Algorithm] = as
		formats[a.Output.Format]++
	}
	algos := make([]string, 0, len(algoStats))
	for name := range algoStats {
		algos = append(algos, name)
	}
	sort.Strings(algos)

	fmt.Println("  Algorithm breakdown:")
	for _, name := range algos {
		as := algoStats[name]
		fmt.Printf("    %-10s %4d files  %10s  ink %5.1f%%\n",
			name, as.count, formatBytes(as.bytes), as.ink/float64(as.count)*100)
	}
	fmt.Println()

	fmt.Println("  Format breakdown:")
	for _, f := range []string{"png", "webp", "avif", "bmp", "tiff", "jpeg"} {
		if n, ok := formats[f]; ok {
			fmt.Printf("    %-6s  %4d files\n", f, n)
		}
	}
	fmt.Println()

	// Warnings.
	var warnings []string
	for key, a := range m.Assets {
		switch {
		case a.InkCoverage >= 0.95:
			warnings = append(warnings, fmt.Sprintf("asset %q is almost solid black (%.0f%% ink)", key, a.InkCoverage*100))
		case a.InkCoverage <= 0.01:
			warnings = append(warnings, fmt.Sprintf("asset %q is almost blank (%.1f%% ink)", key, a.InkCoverage*100))
		}
	}
	sort.Strings(warnings)
	if len(warnings) > 0 {
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
}
