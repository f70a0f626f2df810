package raw

import "errors"

// ErrNonColorMix is returned when a conversion would reinterpret non-color
// data as color or color data as non-color.
var ErrNonColorMix = errors.New("raw: NonColor cannot be converted to or from a color space")

// Image is an in-memory image as row-major double-precision RGBA samples.
// It is the unit the conversion and encoding pipeline operates on.
type Image struct {
	Width  uint32
	Height uint32
	Pixels []Pixel
}

// NewImage creates an Image of the given dimensions with all pixels zero.
func NewImage(width, height uint32) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, int(width)*int(height)),
	}
}

// At returns the pixel at (x, y). No bounds checking.
func (img *Image) At(x, y int) Pixel {
	return img.Pixels[y*int(img.Width)+x]
}

// Set stores the pixel at (x, y). No bounds checking.
func (img *Image) Set(x, y int, p Pixel) {
	img.Pixels[y*int(img.Width)+x] = p
}

// Row returns the pixels of row y as a sub-slice.
func (img *Image) Row(y int) []Pixel {
	w := int(img.Width)
	return img.Pixels[y*w : (y+1)*w]
}

// ConvertImage converts every pixel of img from the src color space to the
// dst color space in place, routing through CIE XYZ.
//
// When src equals dst the image is left untouched. Mixing NonColor with any
// other space is a configuration error reported before any pixel work; the
// image is never partially converted.
//
// Each pixel's transform is pure, so the work is spread across workers with
// ParallelFor; the result is independent of scheduling.
func ConvertImage(img *Image, src, dst ColorSpace) error {
	if src == dst {
		return nil
	}
	if src == ColorSpaceNonColor || dst == ColorSpaceNonColor {
		return ErrNonColorMix
	}

	pixels := img.Pixels
	ParallelFor(len(pixels), func(i int) {
		pixels[i] = pixels[i].ToXYZ(src).FromXYZ(dst)
	})
	return nil
}
