package raw

import (
	"errors"
	"io"

	"github.com/mrjoshuak/go-img2raw/internal/xdr"
)

// HeaderSize is the encoded size of a Header in bytes.
const HeaderSize = 16

// ErrShortHeader is returned when decoding a header from fewer than
// HeaderSize bytes.
var ErrShortHeader = errors.New("raw: short header")

// Header is the fixed-size record optionally prepended to the pixel data.
//
// The color space and data format fields hold raw on-disk codes rather than
// typed enums: a header read from a file may carry any 32-bit value, and a
// header is encoded exactly as its caller supplies it. Interpreting the codes
// is deferred to ResolveColorSpace and ResolveDataFormat, which report
// unknown codes without failing.
//
// All four fields are encoded as little-endian 32-bit integers in field
// order, HeaderSize bytes total.
type Header struct {
	// ColorSpace is the ColorSpace discriminant of the pixel data.
	ColorSpace uint32
	// DataFormat is the DataFormat discriminant of the pixel data.
	DataFormat uint32
	// Width is the image width in pixels.
	Width uint32
	// Height is the image height in pixels.
	Height uint32
}

// NewHeader creates a Header from typed enumeration values.
func NewHeader(cs ColorSpace, df DataFormat, width, height uint32) Header {
	return Header{
		ColorSpace: uint32(cs),
		DataFormat: uint32(df),
		Width:      width,
		Height:     height,
	}
}

// ResolveColorSpace resolves the stored color space code.
// The second return value is false if the code matches no known variant.
func (h Header) ResolveColorSpace() (ColorSpace, bool) {
	return ColorSpaceFromUint32(h.ColorSpace)
}

// ResolveDataFormat resolves the stored data format code.
// The second return value is false if the code matches no known variant.
func (h Header) ResolveDataFormat() (DataFormat, bool) {
	return DataFormatFromUint32(h.DataFormat)
}

// MarshalBinary encodes the header as HeaderSize little-endian bytes.
// No validation is performed; out-of-range codes round-trip unchanged.
func (h Header) MarshalBinary() ([]byte, error) {
	w := xdr.NewBufferWriter(HeaderSize)
	w.WriteUint32(h.ColorSpace)
	w.WriteUint32(h.DataFormat)
	w.WriteUint32(h.Width)
	w.WriteUint32(h.Height)
	return w.Bytes(), nil
}

// UnmarshalBinary decodes the header from HeaderSize bytes.
// The only failure mode is a short input; any bit pattern decodes.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return ErrShortHeader
	}
	r := xdr.NewReader(data)
	h.ColorSpace, _ = r.ReadUint32()
	h.DataFormat, _ = r.ReadUint32()
	h.Width, _ = r.ReadUint32()
	h.Height, _ = r.ReadUint32()
	return nil
}

// DecodeHeader decodes a Header from at least HeaderSize bytes.
func DecodeHeader(data []byte) (Header, error) {
	var h Header
	err := h.UnmarshalBinary(data)
	return h, err
}

// WriteTo writes the encoded header to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	data, _ := h.MarshalBinary()
	n, err := w.Write(data)
	return int64(n), err
}

// ReadHeader reads and decodes a Header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return Header{}, ErrShortHeader
		}
		return Header{}, err
	}
	return DecodeHeader(buf[:])
}
