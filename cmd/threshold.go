package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/encoder"
	"github.com/spf13/cobra"
)

var (
	thresholdKind   string
	thresholdLevel  int
	thresholdInvert bool
	thresholdSize   int
	thresholdOut    string
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold",
	Short: "Render a threshold map as a grayscale image",
	Long: `Writes the Bayer or blue-noise threshold matrix used by the ordered
engines as an 8-bit grayscale PNG, one pixel per cell.`,
	Example: `  ditherthat threshold --kind bayer --level 3 -o bayer16.png
  ditherthat threshold --kind bluenoise --size 128 -o blue128.png`,
	Args: cobra.NoArgs,
	RunE: runThreshold,
}

func init() {
	thresholdCmd.Flags().StringVarP(&thresholdKind, "kind", "k", "bayer", "bayer or bluenoise")
	thresholdCmd.Flags().IntVar(&thresholdLevel, "level", 2, "Bayer matrix level 0-5")
	thresholdCmd.Flags().BoolVar(&thresholdInvert, "invert", false, "Bayer: invert the matrix")
	thresholdCmd.Flags().IntVar(&thresholdSize, "size", dither.DefaultMapSize, "blue-noise map size")
	thresholdCmd.Flags().StringVarP(&thresholdOut, "out", "o", "", "output PNG (default <kind>-<side>.png)")
	rootCmd.AddCommand(thresholdCmd)
}

func runThreshold(cmd *cobra.Command, args []string) error {
	var (
		th   []float32
		side int
	)
	switch strings.ToLower(thresholdKind) {
	case "bayer":
		th, side = dither.BayerThresholds(thresholdLevel, thresholdInvert)
	case "bluenoise", "blue", "blue-noise":
		th, side = dither.DefaultCache.Map(thresholdSize)
	default:
		return fmt.Errorf("unknown threshold kind %q (want bayer or bluenoise)", thresholdKind)
	}
	logVerbose("threshold map: %s %dx%d", thresholdKind, side, side)

	data, err := (&encoder.PNGEncoder{}).Encode(dither.ThresholdImage(th, side), 0)
	if err != nil {
		return fmt.Errorf("encode threshold map: %w", err)
	}

	out := thresholdOut
	if out == "" {
		out = fmt.Sprintf("%s-%d.png", strings.ToLower(thresholdKind), side)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write threshold map: %w", err)
	}
	fmt.Printf("%s  %dx%d  %s\n", out, side, side, formatBytes(int64(len(data))))
	return nil
}
