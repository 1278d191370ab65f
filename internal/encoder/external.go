package encoder

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
)

// Atomic counter for unique temp file names across goroutines.
var tempCounter atomic.Int64

// toolEncoder shells out to an external converter that reads a PNG file
// and writes its own format. This avoids CGO for webp and avif.
type toolEncoder struct {
	format  string
	binary  string
	install string
	// args builds the command line for the given input and output paths.
	args func(src, dst string) []string

	once sync.Once
	path string
}

func (e *toolEncoder) Format() string    { return e.format }
func (e *toolEncoder) Extension() string { return e.format }

// Lossless is always true: both tools are invoked in lossless mode.
func (e *toolEncoder) Lossless() bool { return true }

func (e *toolEncoder) Available() bool {
	e.once.Do(func() {
		if path, err := exec.LookPath(e.binary); err == nil {
			e.path = path
		}
	})
	return e.path != ""
}

func (e *toolEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("%s not found in PATH; install with: %s", e.binary, e.install)
	}

	id := tempCounter.Add(1)
	srcFile, err := os.CreateTemp("", fmt.Sprintf("ditherthat_%s_src_%d_*.png", e.format, id))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	srcPath := srcFile.Name()
	defer os.Remove(srcPath)

	if err := png.Encode(srcFile, img); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	if err := srcFile.Close(); err != nil {
		return nil, fmt.Errorf("close temp png: %w", err)
	}

	dstFile, err := os.CreateTemp("", fmt.Sprintf("ditherthat_%s_dst_%d_*.%s", e.format, id, e.format))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dstPath := dstFile.Name()
	dstFile.Close()
	defer os.Remove(dstPath)

	cmd := exec.Command(e.path, e.args(srcPath, dstPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", e.binary, err, string(out))
	}
	return os.ReadFile(dstPath)
}

// NewWebPEncoder encodes lossless WebP through cwebp.
// Install: brew install webp / apt install webp
func NewWebPEncoder() Encoder {
	return &toolEncoder{
		format:  "webp",
		binary:  "cwebp",
		install: "brew install webp",
		args: func(src, dst string) []string {
			return []string{"-lossless", "-z", "9", "-quiet", src, "-o", dst}
		},
	}
}

// NewAVIFEncoder encodes lossless AVIF through avifenc.
// Install: brew install libavif / apt install libavif-bin
func NewAVIFEncoder() Encoder {
	return &toolEncoder{
		format:  "avif",
		binary:  "avifenc",
		install: "brew install libavif",
		args: func(src, dst string) []string {
			return []string{"--lossless", "--speed", "6", "-j", "all", src, dst}
		},
	}
}
