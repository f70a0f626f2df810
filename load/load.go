// Package load decodes source image containers into floating-point RGBA
// samples for the img2raw pipeline.
//
// Supported containers are PNG, JPEG, BMP, TIFF, PNM (PBM/PGM/PPM),
// Radiance HDR and JPEG 2000 (JP2 and raw codestreams). The container is
// detected from magic bytes, never from the file name.
//
// Standard dynamic range sources are normalized to [0, 1] per channel; a
// Radiance HDR source keeps its unbounded positive values. Sources without an
// alpha channel get alpha 1.
package load

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"
	"github.com/spakin/netpbm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/mrjoshuak/go-img2raw/raw"
)

// ErrUnsupportedFormat is returned when the input matches no supported
// container's magic bytes.
var ErrUnsupportedFormat = errors.New("load: unsupported image format")

// hdrImage is the surface a high dynamic range decoder result exposes.
// mdouchement/hdr images satisfy it structurally.
type hdrImage interface {
	image.Image
	HDRAt(x, y int) hdrcolor.Color
}

// Decode reads an image in any supported container from r and converts it to
// row-major float64 RGBA samples.
func Decode(r io.Reader) (*raw.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an in-memory image in any supported container.
func DecodeBytes(data []byte) (*raw.Image, error) {
	decode := sniff(data)
	if decode == nil {
		return nil, ErrUnsupportedFormat
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return fromImage(img), nil
}

// File decodes the image file at path.
func File(path string) (*raw.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// sniff picks a decoder from the container's magic bytes, or nil.
func sniff(data []byte) func(io.Reader) (image.Image, error) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return png.Decode
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return jpeg.Decode
	case bytes.HasPrefix(data, []byte("BM")):
		return bmp.Decode
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return tiff.Decode
	case bytes.HasPrefix(data, []byte("#?RADIANCE")), bytes.HasPrefix(data, []byte("#?RGBE")):
		return rgbe.Decode
	case isPNM(data):
		return func(r io.Reader) (image.Image, error) {
			return netpbm.Decode(r, nil)
		}
	case bytes.HasPrefix(data, []byte("\x00\x00\x00\x0cjP  ")), // JP2 signature box
		bytes.HasPrefix(data, []byte("\xff\x4f\xff\x51")): // bare J2K codestream
		return jpeg2000.Decode
	default:
		return nil
	}
}

// isPNM matches the P1..P7 netpbm magic numbers.
func isPNM(data []byte) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] >= '1' && data[1] <= '7'
}

// fromImage converts a decoded image to float64 RGBA samples. HDR images
// keep their float values; everything else is read through the 8-bit
// non-premultiplied NRGBA model and normalized to [0, 1].
func fromImage(src image.Image) *raw.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := raw.NewImage(uint32(width), uint32(height))

	if hi, ok := src.(hdrImage); ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := hi.HDRAt(bounds.Min.X+x, bounds.Min.Y+y).HDRRGBA()
				out.Set(x, y, raw.Pixel{R: r, G: g, B: b, A: 1})
			}
		}
		return out
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.Set(x, y, raw.Pixel{
				R: float64(c.R) / 255.0,
				G: float64(c.G) / 255.0,
				B: float64(c.B) / 255.0,
				A: float64(c.A) / 255.0,
			})
		}
	}
	return out
}
