package raw

import "math"

// Pixel is a single color sample with double-precision components.
//
// Components are unbounded while in flight so that HDR values survive color
// conversion untouched; clamping and quantization happen only at encode time.
// The alpha component is never color-converted.
type Pixel struct {
	R, G, B, A float64
}

// ToXYZ converts the pixel from the given source color space to CIE XYZ.
// NonColor and CIEXYZ data pass through unchanged; alpha is untouched for
// every space.
func (p Pixel) ToXYZ(src ColorSpace) Pixel {
	switch src {
	case ColorSpaceLinearSRGB:
		return p.linearSRGBToXYZ()
	case ColorSpaceSRGB:
		p.R = srgbDecodeGamma(p.R)
		p.G = srgbDecodeGamma(p.G)
		p.B = srgbDecodeGamma(p.B)
		return p.linearSRGBToXYZ()
	default: // NonColor, CIEXYZ
		return p
	}
}

// FromXYZ converts the pixel from CIE XYZ to the given destination color
// space. NonColor and CIEXYZ data pass through unchanged; alpha is untouched
// for every space.
func (p Pixel) FromXYZ(dst ColorSpace) Pixel {
	switch dst {
	case ColorSpaceLinearSRGB:
		return p.xyzToLinearSRGB()
	case ColorSpaceSRGB:
		q := p.xyzToLinearSRGB()
		q.R = srgbEncodeGamma(q.R)
		q.G = srgbEncodeGamma(q.G)
		q.B = srgbEncodeGamma(q.B)
		return q
	default: // NonColor, CIEXYZ
		return p
	}
}

// linearSRGBToXYZ applies the Rec. 709 / D65 RGB-to-XYZ matrix.
func (p Pixel) linearSRGBToXYZ() Pixel {
	q := p
	q.R = 0.4124*p.R + 0.3576*p.G + 0.1805*p.B
	q.G = 0.2126*p.R + 0.7152*p.G + 0.0722*p.B
	q.B = 0.0193*p.R + 0.1192*p.G + 0.9505*p.B
	return q
}

// xyzToLinearSRGB applies the inverse Rec. 709 / D65 matrix.
func (p Pixel) xyzToLinearSRGB() Pixel {
	q := p
	q.R = 3.2406*p.R - 1.5372*p.G - 0.4986*p.B
	q.G = -0.9689*p.R + 1.8758*p.G + 0.0415*p.B
	q.B = 0.0557*p.R - 0.2040*p.G + 1.0570*p.B
	return q
}

// srgbEncodeGamma applies the sRGB opto-electronic transfer function to a
// single linear channel value.
func srgbEncodeGamma(x float64) float64 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1.0/2.4) - 0.055
}

// srgbDecodeGamma applies the sRGB electro-optical transfer function to a
// single gamma-encoded channel value.
func srgbDecodeGamma(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}
