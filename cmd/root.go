package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ditherthat",
	Short: "Turn any picture into crisp 1-bit black and white",
	Long: `ditherthat reduces images to pure black and white with ordered (Bayer),
blue-noise, error-diffusion (Floyd-Steinberg, Simple 2D, Jarvis-Judice-Ninke,
Atkinson) and Riemersma (Hilbert curve) dithering.

All work happens in linear light, so mid-tones keep their perceived
brightness on thermal printers, e-ink panels and screens alike.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"ditherthat %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[ditherthat] "+format+"\n", args...)
	}
}

// interactive reports whether stdout is a terminal; reports drop their
// decorations when piped.
func interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
