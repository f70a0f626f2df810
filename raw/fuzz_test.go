package raw

import (
	"bytes"
	"testing"
)

// FuzzDecodeHeader tests header parsing with arbitrary data.
func FuzzDecodeHeader(f *testing.F) {
	// Valid headers
	f.Add([]byte{
		0x02, 0x00, 0x00, 0x00, // SRGB
		0x07, 0x00, 0x00, 0x00, // RGBA16F
		0x80, 0x02, 0x00, 0x00, // 640
		0xe0, 0x01, 0x00, 0x00, // 480
	})
	f.Add(make([]byte, HeaderSize)) // all zero

	// Malicious inputs
	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Add(bytes.Repeat([]byte{0xff}, 15)) // one byte short
	f.Add(bytes.Repeat([]byte{0xff}, 64)) // trailing garbage

	f.Fuzz(func(t *testing.T, data []byte) {
		// Should not panic, may return error
		h, err := DecodeHeader(data)
		if err != nil {
			if len(data) >= HeaderSize {
				t.Errorf("DecodeHeader failed on %d bytes: %v", len(data), err)
			}
			return
		}
		if len(data) < HeaderSize {
			t.Fatalf("DecodeHeader accepted %d bytes", len(data))
		}

		// Successful parses must round-trip to the same leading bytes.
		out, err := h.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}
		if !bytes.Equal(out, data[:HeaderSize]) {
			t.Errorf("round trip = % x, want % x", out, data[:HeaderSize])
		}
	})
}

// FuzzHeaderRoundTrip tests header field encoding.
func FuzzHeaderRoundTrip(f *testing.F) {
	f.Add(uint32(0), uint32(0), uint32(0), uint32(0))
	f.Add(uint32(2), uint32(10), uint32(1920), uint32(1080))
	f.Add(uint32(0xffffffff), uint32(0xffffffff), uint32(0xffffffff), uint32(0xffffffff))

	f.Fuzz(func(t *testing.T, cs, df, w, h uint32) {
		hdr := Header{ColorSpace: cs, DataFormat: df, Width: w, Height: h}

		data, err := hdr.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}

		var got Header
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary: %v", err)
		}
		if got != hdr {
			t.Errorf("round trip = %+v, want %+v", got, hdr)
		}
	})
}
