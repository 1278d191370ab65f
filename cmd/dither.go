package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/encoder"
	"github.com/alyonafuria/ditherthat/internal/hasher"
	"github.com/alyonafuria/ditherthat/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	ditherOut  string
	ditherOpts ditherFlags
)

var ditherCmd = &cobra.Command{
	Use:   "dither <input>",
	Short: "Dither a single image",
	Long: `Decodes one image (png, jpeg, gif, webp, bmp, tiff), optionally resizes
and tone-adjusts it, dithers it to black and white and writes the result.

Without --out the output is written next to the input as
<name>.<algorithm>.<ext>.`,
	Example: `  ditherthat dither photo.jpg -a atkinson --width 384
  ditherthat dither photo.jpg -a bayer --level 3 -o out.png
  ditherthat dither photo.jpg -p eink -f bmp`,
	Args: cobra.ExactArgs(1),
	RunE: runDither,
}

func init() {
	ditherCmd.Flags().StringVarP(&ditherOut, "out", "o", "", "output file")
	ditherOpts.register(ditherCmd)
	rootCmd.AddCommand(ditherCmd)
}

func runDither(cmd *cobra.Command, args []string) error {
	start := time.Now()
	input := args[0]

	prof, err := ditherOpts.resolve(cmd)
	if err != nil {
		return err
	}
	if ditherOut != "" && ditherOpts.format == "" {
		if ext := filepath.Ext(ditherOut); ext != "" {
			prof.Format = encoder.Normalize(ext)
		}
	}

	enc, err := encoder.NewRegistry().Resolve(prof.Format)
	if err != nil {
		return err
	}

	if !enc.Lossless() {
		fmt.Fprintf(os.Stderr, "[ditherthat] warning: %s is lossy; output will not be pure black and white\n",
			enc.Format())
	}

	img, srcFormat, err := pipeline.Decode(input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}
	b := img.Bounds()
	logVerbose("input:   %s (%s %dx%d)", input, srcFormat, b.Dx(), b.Dy())
	logVerbose("preset:  %s, %s", prof.Name, describe(prof.Options))

	bilevel, pix, err := pipeline.Render(img, prof, dither.DefaultCache)
	if err != nil {
		return fmt.Errorf("dither: %w", err)
	}

	data, err := pipeline.Encode(enc, bilevel, pix, ditherOpts.quality)
	if err != nil {
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}

	out := ditherOut
	if out == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		out = fmt.Sprintf("%s.%s.%s", base, prof.Options.Algorithm, enc.Extension())
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	w, h := bilevel.Rect.Dx(), bilevel.Rect.Dy()
	fmt.Printf("%s  %dx%d  %s  ink %.1f%%  %s  [%s]\n",
		out, w, h, formatBytes(int64(len(data))),
		dither.InkCoverage(pix)*100,
		hasher.PixelFingerprint(pix, w, h)[:8],
		time.Since(start).Round(time.Millisecond))
	return nil
}
