package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/manifest"
	"github.com/alyonafuria/ditherthat/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	batchOutDir  string
	batchWorkers int
	batchOpts    ditherFlags
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Dither every image in a directory and write a manifest",
	Long: `Scans the input directory for images (png, jpg, jpeg, gif, webp, bmp, tiff),
dithers each one with the selected preset and writes the results plus
a manifest file.

Output filenames are content-addressed: <key>.<algorithm>.<hash>.ext`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./ditherthat_out", "output directory")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	batchOpts.register(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof, err := batchOpts.resolve(cmd)
	if err != nil {
		return err
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("preset:  %s, %s (width=%d)", prof.Name, describe(prof.Options), prof.Width)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Profile:   prof,
		Workers:   batchWorkers,
		Verbose:   verbose,
		Quality:   batchOpts.quality,
	}, dither.DefaultCache)

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	if interactive() {
		fmt.Println()
		fmt.Println("╔══════════════════════════════════════════════════╗")
		fmt.Println("║            ditherthat batch complete             ║")
		fmt.Println("╚══════════════════════════════════════════════════╝")
	}
	fmt.Println()

	stats := m.Stats
	ratio := float64(0)
	if stats.TotalInputBytes > 0 {
		ratio = float64(stats.TotalOutputBytes) / float64(stats.TotalInputBytes) * 100
	}

	fmt.Printf("  Assets:      %d\n", stats.TotalAssets)
	if stats.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", stats.Failed)
	}
	fmt.Printf("  Input size:  %s\n", formatBytes(stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(stats.TotalOutputBytes))
	fmt.Printf("  Ratio:       %.1f%% of original\n", ratio)
	fmt.Printf("  Ink:         %.1f%% mean coverage\n", stats.MeanInkCoverage*100)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))

	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
		for _, n := range m.BuildInfo.BlueNoiseMaps {
			fmt.Printf("  Blue noise:  %dx%d map\n", n, n)
		}
	}
	fmt.Println()

	// Ten darkest outputs: the ones most likely to smear on thermal paper.
	if len(m.Assets) > 0 {
		type assetInk struct {
			key  string
			ink  float64
			size int64
		}
		items := make([]assetInk, 0, len(m.Assets))
		for key, a := range m.Assets {
			items = append(items, assetInk{key, a.InkCoverage, a.Output.Size})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].ink != items[j].ink {
				return items[i].ink > items[j].ink
			}
			return items[i].key < items[j].key
		})
		n := min(len(items), 10)
		fmt.Printf("  Top %d darkest (ink coverage, output size):\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %5.1f%%  %8s\n",
				truncKey(it.key, 40), it.ink*100, formatBytes(it.size))
		}
		fmt.Println()
	}

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    %s (%s)\n", manifest.FileName, formatBytes(int64(len(data))))
	fmt.Println()
}
