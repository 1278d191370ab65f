package dither

import "github.com/alyonafuria/ditherthat/internal/luminance"

// Tap is one destination of a diffused error: the neighbour at (DX, DY)
// relative to the current pixel receives Weight times the error.
type Tap struct {
	DX, DY int
	Weight float32
}

// Kernel is an error-diffusion matrix. Taps must point strictly forward in
// raster order (DY > 0, or DY == 0 and DX > 0).
type Kernel struct {
	Name string
	Taps []Tap
}

// Sum returns the total weight distributed by the kernel.
func (k Kernel) Sum() float32 {
	var s float32
	for _, t := range k.Taps {
		s += t.Weight
	}
	return s
}

// Built-in kernels.
var (
	// FloydSteinberg spreads 7/16 right and 3,5,1/16 on the next row.
	FloydSteinberg = Kernel{
		Name: "floyd-steinberg",
		Taps: []Tap{
			{1, 0, 7.0 / 16},
			{-1, 1, 3.0 / 16},
			{0, 1, 5.0 / 16},
			{1, 1, 1.0 / 16},
		},
	}

	// Simple2D sends half the error right and half down.
	Simple2D = Kernel{
		Name: "simple2d",
		Taps: []Tap{
			{1, 0, 0.5},
			{0, 1, 0.5},
		},
	}

	// JarvisJudiceNinke spreads over two rows in 48ths.
	JarvisJudiceNinke = Kernel{
		Name: "jarvis-judice-ninke",
		Taps: []Tap{
			{1, 0, 7.0 / 48}, {2, 0, 5.0 / 48},
			{-2, 1, 3.0 / 48}, {-1, 1, 5.0 / 48}, {0, 1, 7.0 / 48}, {1, 1, 5.0 / 48}, {2, 1, 3.0 / 48},
			{-2, 2, 1.0 / 48}, {-1, 2, 3.0 / 48}, {0, 2, 5.0 / 48}, {1, 2, 3.0 / 48}, {2, 2, 1.0 / 48},
		},
	}

	// Atkinson gives 1/8 to six neighbours and drops the remaining quarter,
	// which keeps highlights and shadows from bleeding.
	Atkinson = Kernel{
		Name: "atkinson",
		Taps: []Tap{
			{1, 0, 1.0 / 8}, {2, 0, 1.0 / 8},
			{-1, 1, 1.0 / 8}, {0, 1, 1.0 / 8}, {1, 1, 1.0 / 8},
			{0, 2, 1.0 / 8},
		},
	}
)

// Diffuse dithers src into dst by thresholding at 0.5 in raster order and
// pushing each pixel's residual onto unvisited neighbours through k.
// Shares that would land outside the image are dropped.
func Diffuse(dst, src []byte, width, height int, k Kernel) error {
	n, err := checkBuffers(dst, src, width, height)
	if err != nil || n == 0 {
		return err
	}

	buf := luminance.Buffer(src, n)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			old := buf[idx]
			on := old > 0.5
			var quant float32
			if on {
				quant = 1
			}
			e := old - quant
			setPixel(dst, idx, on)

			for _, t := range k.Taps {
				nx, ny := x+t.DX, y+t.DY
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				j := ny*width + nx
				buf[j] = luminance.Clamp01(buf[j] + e*t.Weight)
			}
		}
	}
	return nil
}
