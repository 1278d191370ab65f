package dither

import (
	"image"
	"image/color"
)

// PixelsFromImage flattens img into a non-premultiplied RGBA buffer with
// the origin at img.Bounds().Min.
func PixelsFromImage(img image.Image) (pix []byte, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	pix = make([]byte, width*height*4)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*width*4:(y+1)*width*4], src.Pix[off:off+width*4])
		}
	case *image.RGBA:
		for y := 0; y < height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := src.Pix[off : off+width*4]
			d := pix[y*width*4 : (y+1)*width*4]
			for x := 0; x < width*4; x += 4 {
				unpremultiply(d[x:x+4], row[x], row[x+1], row[x+2], row[x+3])
			}
		}
	case *image.Gray:
		for y := 0; y < height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := src.Pix[off : off+width]
			d := pix[y*width*4 : (y+1)*width*4]
			for x, v := range row {
				d[x*4] = v
				d[x*4+1] = v
				d[x*4+2] = v
				d[x*4+3] = 255
			}
		}
	default:
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				pix[i] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
				pix[i+3] = c.A
				i += 4
			}
		}
	}
	return pix, width, height
}

func unpremultiply(d []byte, r, g, b, a uint8) {
	switch a {
	case 0:
		d[0], d[1], d[2], d[3] = 0, 0, 0, 0
	case 255:
		d[0], d[1], d[2], d[3] = r, g, b, 255
	default:
		d[0] = uint8(uint32(r) * 255 / uint32(a))
		d[1] = uint8(uint32(g) * 255 / uint32(a))
		d[2] = uint8(uint32(b) * 255 / uint32(a))
		d[3] = a
	}
}

// ToGray wraps a dithered RGBA buffer as an 8-bit grayscale image.
func ToGray(pix []byte, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = pix[i*4]
	}
	return img
}

// Bilevel is the black/white palette of dithered output.
var Bilevel = color.Palette{color.Gray{Y: 0}, color.Gray{Y: 255}}

// ToBilevel converts a dithered RGBA buffer to a two-colour paletted image,
// which encoders can store at one bit per pixel.
func ToBilevel(pix []byte, width, height int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, width, height), Bilevel)
	for i := range img.Pix {
		if pix[i*4] != 0 {
			img.Pix[i] = 1
		}
	}
	return img
}

// ThresholdImage renders a row-major side×side threshold map in [0,1] as
// an 8-bit grayscale image.
func ThresholdImage(th []float32, side int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, side, side))
	for i, v := range th {
		img.Pix[i] = uint8(v*255 + 0.5)
	}
	return img
}
