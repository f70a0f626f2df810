// Package raw provides encoding of the img2raw compact binary pixel format.
//
// An img2raw file is an optional 16-byte header followed by a pixel-data
// section. The header carries two 32-bit enumeration codes (color space and
// data format) and the image dimensions; the pixel data is a row-major
// sequence of pixels laid out according to the selected data format. All
// multi-byte values are little-endian.
//
// The package implements the three codec concerns: the enumeration types and
// their on-disk discriminants, the header codec, and the per-pixel color
// space conversion and quantization pipeline that produces the eleven
// supported byte layouts.
package raw

import (
	"errors"
)

// Enumeration parsing errors.
var (
	ErrUnknownColorSpace = errors.New("raw: unknown color space")
	ErrUnknownDataFormat = errors.New("raw: unknown data format")
)

// ColorSpace identifies the color space of the pixel data.
//
// The numeric values are on-disk discriminants and must never be renumbered;
// a new color space takes the next unused integer.
type ColorSpace uint32

const (
	// ColorSpaceNonColor marks pixel data that carries no color information.
	ColorSpaceNonColor ColorSpace = 0
	// ColorSpaceCIEXYZ is the CIE XYZ 1931 color space using the D65 illuminant.
	ColorSpaceCIEXYZ ColorSpace = 1
	// ColorSpaceSRGB is the sRGB color space as defined by IEC 61966-2-1:1999.
	ColorSpaceSRGB ColorSpace = 2
	// ColorSpaceLinearSRGB is the sRGB color space without gamma correction.
	ColorSpaceLinearSRGB ColorSpace = 3
)

// String returns the canonical identifier of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceNonColor:
		return "NonColor"
	case ColorSpaceCIEXYZ:
		return "CIEXYZ"
	case ColorSpaceSRGB:
		return "SRGB"
	case ColorSpaceLinearSRGB:
		return "LinearSRGB"
	default:
		return "unknown"
	}
}

// Valid reports whether cs is a known color space.
func (cs ColorSpace) Valid() bool {
	_, ok := ColorSpaceFromUint32(uint32(cs))
	return ok
}

// ColorSpaceFromUint32 resolves an on-disk discriminant to a ColorSpace.
// The second return value is false for any unrecognized code.
func ColorSpaceFromUint32(v uint32) (ColorSpace, bool) {
	switch ColorSpace(v) {
	case ColorSpaceNonColor, ColorSpaceCIEXYZ, ColorSpaceSRGB, ColorSpaceLinearSRGB:
		return ColorSpace(v), true
	default:
		return 0, false
	}
}

// ParseColorSpace resolves a canonical identifier to a ColorSpace.
// The match is exact and case-sensitive; anything else yields
// ErrUnknownColorSpace.
func ParseColorSpace(s string) (ColorSpace, error) {
	switch s {
	case "NonColor":
		return ColorSpaceNonColor, nil
	case "CIEXYZ":
		return ColorSpaceCIEXYZ, nil
	case "SRGB":
		return ColorSpaceSRGB, nil
	case "LinearSRGB":
		return ColorSpaceLinearSRGB, nil
	default:
		return 0, ErrUnknownColorSpace
	}
}

// ColorSpaces returns all known color spaces in discriminant order.
func ColorSpaces() []ColorSpace {
	return []ColorSpace{
		ColorSpaceNonColor,
		ColorSpaceCIEXYZ,
		ColorSpaceSRGB,
		ColorSpaceLinearSRGB,
	}
}

// DataFormat identifies the byte layout of the pixel data.
//
// The numeric values are on-disk discriminants and must never be renumbered;
// a new format takes the next unused integer.
type DataFormat uint32

const (
	// DataFormatR32F stores r as a 32-bit float, 4-byte row alignment.
	DataFormatR32F DataFormat = 0
	// DataFormatRG32F stores r,g as 32-bit floats, 4-byte row alignment.
	DataFormatRG32F DataFormat = 1
	// DataFormatRGBA32F stores r,g,b,a as 32-bit floats, 4-byte row alignment.
	DataFormatRGBA32F DataFormat = 2
	// DataFormatR8 stores r as an 8-bit fixed-point value, rows padded to 4 bytes.
	DataFormatR8 DataFormat = 3
	// DataFormatPackedR8 stores r as an 8-bit fixed-point value, 1-byte row alignment.
	DataFormatPackedR8 DataFormat = 4
	// DataFormatR16F stores r as a 16-bit float, rows padded to 4 bytes.
	DataFormatR16F DataFormat = 5
	// DataFormatRG16F stores r,g as 16-bit floats, 4-byte row alignment.
	DataFormatRG16F DataFormat = 6
	// DataFormatRGBA16F stores r,g,b,a as 16-bit floats, 4-byte row alignment.
	DataFormatRGBA16F DataFormat = 7
	// DataFormatPackedR16F stores r as a 16-bit float, 2-byte row alignment.
	DataFormatPackedR16F DataFormat = 8
	// DataFormatRGBE8 stores r,g,b mantissa bytes with a shared exponent byte,
	// 4-byte row alignment.
	DataFormatRGBE8 DataFormat = 9
	// DataFormatRGBA8 stores r,g,b,a as 8-bit fixed-point values, 4-byte row alignment.
	DataFormatRGBA8 DataFormat = 10
)

// String returns the canonical identifier of the data format.
func (df DataFormat) String() string {
	switch df {
	case DataFormatR32F:
		return "R32F"
	case DataFormatRG32F:
		return "RG32F"
	case DataFormatRGBA32F:
		return "RGBA32F"
	case DataFormatR8:
		return "R8"
	case DataFormatPackedR8:
		return "PackedR8"
	case DataFormatR16F:
		return "R16F"
	case DataFormatRG16F:
		return "RG16F"
	case DataFormatRGBA16F:
		return "RGBA16F"
	case DataFormatPackedR16F:
		return "PackedR16F"
	case DataFormatRGBE8:
		return "RGBE8"
	case DataFormatRGBA8:
		return "RGBA8"
	default:
		return "unknown"
	}
}

// Valid reports whether df is a known data format.
func (df DataFormat) Valid() bool {
	_, ok := DataFormatFromUint32(uint32(df))
	return ok
}

// DataFormatFromUint32 resolves an on-disk discriminant to a DataFormat.
// The second return value is false for any unrecognized code.
func DataFormatFromUint32(v uint32) (DataFormat, bool) {
	if v > uint32(DataFormatRGBA8) {
		return 0, false
	}
	return DataFormat(v), true
}

// ParseDataFormat resolves a canonical identifier to a DataFormat.
// The match is exact and case-sensitive; anything else yields
// ErrUnknownDataFormat.
func ParseDataFormat(s string) (DataFormat, error) {
	switch s {
	case "R32F":
		return DataFormatR32F, nil
	case "RG32F":
		return DataFormatRG32F, nil
	case "RGBA32F":
		return DataFormatRGBA32F, nil
	case "R8":
		return DataFormatR8, nil
	case "PackedR8":
		return DataFormatPackedR8, nil
	case "R16F":
		return DataFormatR16F, nil
	case "RG16F":
		return DataFormatRG16F, nil
	case "RGBA16F":
		return DataFormatRGBA16F, nil
	case "PackedR16F":
		return DataFormatPackedR16F, nil
	case "RGBE8":
		return DataFormatRGBE8, nil
	case "RGBA8":
		return DataFormatRGBA8, nil
	default:
		return 0, ErrUnknownDataFormat
	}
}

// DataFormats returns all known data formats in discriminant order.
func DataFormats() []DataFormat {
	return []DataFormat{
		DataFormatR32F,
		DataFormatRG32F,
		DataFormatRGBA32F,
		DataFormatR8,
		DataFormatPackedR8,
		DataFormatR16F,
		DataFormatRG16F,
		DataFormatRGBA16F,
		DataFormatPackedR16F,
		DataFormatRGBE8,
		DataFormatRGBA8,
	}
}

// Channels returns the number of stored channels per pixel.
// The RGBE8 exponent byte counts as a channel.
func (df DataFormat) Channels() int {
	switch df {
	case DataFormatR32F, DataFormatR8, DataFormatPackedR8,
		DataFormatR16F, DataFormatPackedR16F:
		return 1
	case DataFormatRG32F, DataFormatRG16F:
		return 2
	case DataFormatRGBA32F, DataFormatRGBA16F, DataFormatRGBE8, DataFormatRGBA8:
		return 4
	default:
		return 0
	}
}

// BytesPerChannel returns the number of bytes used per stored channel.
func (df DataFormat) BytesPerChannel() int {
	switch df {
	case DataFormatR32F, DataFormatRG32F, DataFormatRGBA32F:
		return 4
	case DataFormatR16F, DataFormatRG16F, DataFormatRGBA16F, DataFormatPackedR16F:
		return 2
	case DataFormatR8, DataFormatPackedR8, DataFormatRGBE8, DataFormatRGBA8:
		return 1
	default:
		return 0
	}
}

// BytesPerPixel returns the number of bytes per pixel before row padding.
func (df DataFormat) BytesPerPixel() int {
	return df.Channels() * df.BytesPerChannel()
}

// RowAlignment returns the byte boundary each encoded row is padded to.
func (df DataFormat) RowAlignment() int {
	switch df {
	case DataFormatPackedR8:
		return 1
	case DataFormatPackedR16F:
		return 2
	default:
		return 4
	}
}

// RowSize returns the encoded byte length of one row of width pixels,
// including row padding. Only R8 and R16F ever need padding; every other
// format's pixel size already satisfies its row alignment.
func (df DataFormat) RowSize(width int) int {
	size := df.BytesPerPixel() * width
	align := df.RowAlignment()
	return size + (align-size%align)%align
}

// DataSize returns the total byte length of the pixel-data section for an
// image of the given dimensions.
func (df DataFormat) DataSize(width, height int) int {
	return df.RowSize(width) * height
}
