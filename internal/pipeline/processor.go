package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/alyonafuria/ditherthat/internal/dither"
	"github.com/alyonafuria/ditherthat/internal/encoder"
	"github.com/alyonafuria/ditherthat/internal/hasher"
	"github.com/alyonafuria/ditherthat/internal/manifest"
	"github.com/alyonafuria/ditherthat/internal/profile"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// Decode opens and decodes an image file in any registered format.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(f)
}

// Prepare resizes img to the profile's target width and applies its tone
// adjustments. The result is always a fresh *image.NRGBA.
func Prepare(img image.Image, prof profile.Profile) *image.NRGBA {
	b := img.Bounds()
	w, h := prof.TargetSize(b.Dx(), b.Dy())

	var out *image.NRGBA
	if w != b.Dx() || h != b.Dy() {
		out = imaging.Resize(img, w, h, imaging.Lanczos)
	} else {
		out = imaging.Clone(img)
	}
	if prof.Contrast != 0 {
		out = imaging.AdjustContrast(out, prof.Contrast)
	}
	if prof.Gamma > 0 && prof.Gamma != 1 {
		out = imaging.AdjustGamma(out, prof.Gamma)
	}
	return out
}

// Render runs the full in-memory transform: prepare, dither, and convert
// to a bilevel image. It returns the dithered RGBA buffer alongside.
func Render(img image.Image, prof profile.Profile, cache *dither.ThresholdCache) (*image.Paletted, []byte, error) {
	prepared := Prepare(img, prof)
	src, w, h := dither.PixelsFromImage(prepared)
	dst := make([]byte, len(src))
	if err := dither.Apply(dst, src, w, h, prof.Options, cache); err != nil {
		return nil, nil, err
	}
	return dither.ToBilevel(dst, w, h), dst, nil
}

// Encode writes a rendered image with enc. JPEG receives the 8-bit gray
// form, which the encoder stores as one component instead of YCbCr.
func Encode(enc encoder.Encoder, bilevel *image.Paletted, pix []byte, quality int) ([]byte, error) {
	var img image.Image = bilevel
	if enc.Format() == "jpeg" {
		img = dither.ToGray(pix, bilevel.Rect.Dx(), bilevel.Rect.Dy())
	}
	return enc.Encode(img, quality)
}

// SettingsOf records the parameters relevant to the selected algorithm.
func SettingsOf(o dither.Options) manifest.Settings {
	s := manifest.Settings{Algorithm: o.Algorithm.String()}
	switch o.Algorithm {
	case dither.AlgBayer:
		s.Level = o.Level
		s.Invert = o.Invert
	case dither.AlgBlueNoise:
		s.MapSize = dither.ClampMapSize(o.MapSize)
	case dither.AlgRiemersma:
		s.ListLen, s.Decay = dither.ClampRiemersma(o.ListLen, o.Decay)
	}
	return s
}

// OutputName builds the content-addressed file name key.algo.hash8.ext.
func OutputName(key string, algo dither.Algorithm, contentHash, ext string) string {
	return fmt.Sprintf("%s.%s.%s.%s", filepath.Base(key), algo, contentHash[:8], ext)
}

// processImage handles a single source image: decode, prepare, dither, encode.
func processImage(src Source, cfg Config, enc encoder.Encoder, cache *dither.ThresholdCache) processResult {
	result := processResult{key: src.Key}

	img, _, err := Decode(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}
	srcHash, err := hashFile(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("hash %s: %w", src.RelPath, err)
		return result
	}

	bilevel, pix, err := Render(img, cfg.Profile, cache)
	if err != nil {
		result.err = fmt.Errorf("dither %s: %w", src.RelPath, err)
		return result
	}
	w, h := bilevel.Rect.Dx(), bilevel.Rect.Dy()

	data, err := Encode(enc, bilevel, pix, cfg.Quality)
	if err != nil {
		result.err = fmt.Errorf("encode %s as %s: %w", src.RelPath, enc.Format(), err)
		return result
	}

	contentHash := hasher.ContentHash(data, 16)
	keyDir := filepath.Dir(src.Key)
	relPath := filepath.ToSlash(filepath.Join(keyDir,
		OutputName(src.Key, cfg.Profile.Options.Algorithm, contentHash, enc.Extension())))

	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		result.err = fmt.Errorf("create dir for %s: %w", relPath, err)
		return result
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relPath, err)
		return result
	}

	b := img.Bounds()
	result.asset = manifest.Asset{
		Source: manifest.SourceInfo{
			Width:  b.Dx(),
			Height: b.Dy(),
			Format: src.Format,
			Size:   src.Size,
			Hash:   srcHash,
		},
		Settings: SettingsOf(cfg.Profile.Options),
		Output: manifest.Output{
			Format:      enc.Format(),
			Width:       w,
			Height:      h,
			Size:        int64(len(data)),
			Hash:        contentHash,
			Fingerprint: hasher.PixelFingerprint(pix, w, h),
			Path:        relPath,
		},
		InkCoverage: dither.InkCoverage(pix),
	}
	return result
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return hasher.ContentHashReader(f, 16)
}
