package raw

import (
	"io"
	"math"

	"github.com/mrjoshuak/go-img2raw/half"
	"github.com/mrjoshuak/go-img2raw/internal/xdr"
)

// rgbeBlackCutoff is the largest channel magnitude still encoded as pure
// black by the shared-exponent format.
const rgbeBlackCutoff = 1e-32

// Encode encodes the pixel data of img in the given format and returns the
// complete pixel-data section, rows top to bottom including row padding.
//
// Encoding never fails on numeric input: out-of-range samples are clamped by
// the per-format quantization rules, not rejected. The only error is an
// unknown data format.
func Encode(img *Image, format DataFormat) ([]byte, error) {
	if !format.Valid() {
		return nil, ErrUnknownDataFormat
	}
	w := xdr.NewBufferWriter(format.DataSize(int(img.Width), int(img.Height)))
	for y := 0; y < int(img.Height); y++ {
		appendRow(w, img.Row(y), format)
	}
	return w.Bytes(), nil
}

// EncodeTo encodes the pixel data of img in the given format and writes it
// to w row by row. Writer errors are propagated unchanged; no retries.
func EncodeTo(w io.Writer, img *Image, format DataFormat) error {
	if !format.Valid() {
		return ErrUnknownDataFormat
	}
	buf := xdr.NewBufferWriter(format.RowSize(int(img.Width)))
	for y := 0; y < int(img.Height); y++ {
		buf.Reset()
		appendRow(buf, img.Row(y), format)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRow encodes a single row of pixels, including row padding.
func EncodeRow(row []Pixel, format DataFormat) ([]byte, error) {
	if !format.Valid() {
		return nil, ErrUnknownDataFormat
	}
	w := xdr.NewBufferWriter(format.RowSize(len(row)))
	appendRow(w, row, format)
	return w.Bytes(), nil
}

// appendRow encodes one row of pixels into w. The format has already been
// validated by the caller.
func appendRow(w *xdr.BufferWriter, row []Pixel, format DataFormat) {
	switch format {
	case DataFormatR32F:
		for _, p := range row {
			w.WriteFloat32(float32(p.R))
		}
	case DataFormatRG32F:
		for _, p := range row {
			w.WriteFloat32(float32(p.R))
			w.WriteFloat32(float32(p.G))
		}
	case DataFormatRGBA32F:
		for _, p := range row {
			w.WriteFloat32(float32(p.R))
			w.WriteFloat32(float32(p.G))
			w.WriteFloat32(float32(p.B))
			w.WriteFloat32(float32(p.A))
		}
	case DataFormatR8, DataFormatPackedR8:
		for _, p := range row {
			w.WriteUint8(quantizeUnorm8(p.R))
		}
	case DataFormatR16F, DataFormatPackedR16F:
		for _, p := range row {
			w.WriteUint16(half.FromFloat64Clamped(p.R).Bits())
		}
	case DataFormatRG16F:
		for _, p := range row {
			w.WriteUint16(half.FromFloat64Clamped(p.R).Bits())
			w.WriteUint16(half.FromFloat64Clamped(p.G).Bits())
		}
	case DataFormatRGBA16F:
		for _, p := range row {
			w.WriteUint16(half.FromFloat64Clamped(p.R).Bits())
			w.WriteUint16(half.FromFloat64Clamped(p.G).Bits())
			w.WriteUint16(half.FromFloat64Clamped(p.B).Bits())
			w.WriteUint16(half.FromFloat64Clamped(p.A).Bits())
		}
	case DataFormatRGBE8:
		for _, p := range row {
			appendRGBE(w, p)
		}
	case DataFormatRGBA8:
		for _, p := range row {
			w.WriteUint8(quantizeUnorm8(p.R))
			w.WriteUint8(quantizeUnorm8(p.G))
			w.WriteUint8(quantizeUnorm8(p.B))
			w.WriteUint8(quantizeUnorm8(p.A))
		}
	}

	// Zero padding up to the format's row alignment. Only R8 and R16F rows
	// can land off-boundary.
	align := format.RowAlignment()
	for w.Len()%align != 0 {
		w.WriteByte(0)
	}
}

// appendRGBE encodes one pixel as three mantissa bytes sharing one exponent
// byte. The largest of r, g, b picks the exponent; each channel byte is the
// channel scaled into the shared mantissa range, clamped and truncated.
func appendRGBE(w *xdr.BufferWriter, p Pixel) {
	v := maxChannel(p.R, maxChannel(p.G, p.B))

	if v < rgbeBlackCutoff {
		w.WriteUint32(0)
		return
	}

	f, e := math.Frexp(v)
	scale := f * 256.0 / v

	w.WriteUint8(quantizeRGBEChannel(p.R * scale))
	w.WriteUint8(quantizeRGBEChannel(p.G * scale))
	w.WriteUint8(quantizeRGBEChannel(p.B * scale))
	// The exponent byte wraps modulo 256 for exponents outside [-128, 127].
	w.WriteUint8(uint8(e + 128))
}

// maxChannel returns the larger of a and b, ignoring NaN. Only when both are
// NaN is NaN returned. The shared-exponent selection must skip NaN channels
// so the remaining channels still encode.
func maxChannel(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a > b:
		return a
	}
	return b
}

// quantizeUnorm8 maps a [0, 1] sample to an 8-bit value, clamping first and
// truncating the scaled result. The truncating cast is part of the format
// contract; do not round. NaN clamps high, like a min-then-max clamp chain.
func quantizeUnorm8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v > 1:
		v = 1
	case v < 0:
		v = 0
	}
	return uint8(v * 255.0)
}

// quantizeRGBEChannel clamps a scaled RGBE mantissa to [0, 255] and
// truncates. NaN clamps high, like a min-then-max clamp chain.
func quantizeRGBEChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v > 255:
		v = 255
	case v < 0:
		v = 0
	}
	return uint8(v)
}
