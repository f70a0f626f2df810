package xdr

import (
	"bytes"
	"testing"
)

// FuzzReader tests primitive reads with arbitrary data.
func FuzzReader(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	f.Add(bytes.Repeat([]byte{0xAB}, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)

		// Drain the buffer with mixed-width reads; must never panic and
		// must account for every byte exactly once.
		for r.Len() > 0 {
			switch r.Len() % 3 {
			case 0:
				if _, err := r.ReadUint32(); err != nil {
					// Fewer than 4 bytes left; a single byte must still read.
					if _, err := r.ReadByte(); err != nil {
						t.Fatalf("ReadByte with %d remaining: %v", r.Len(), err)
					}
				}
			case 1:
				if _, err := r.ReadByte(); err != nil {
					t.Fatalf("ReadByte with %d remaining: %v", r.Len(), err)
				}
			case 2:
				if _, err := r.ReadUint16(); err != nil {
					t.Fatalf("ReadUint16 with %d remaining: %v", r.Len(), err)
				}
			}
		}

		if r.Pos() != len(data) {
			t.Errorf("Pos() = %d after drain, want %d", r.Pos(), len(data))
		}
	})
}

// FuzzWriteReadRoundTrip tests that written values read back identically.
func FuzzWriteReadRoundTrip(f *testing.F) {
	f.Add(uint32(0), uint16(0), byte(0))
	f.Add(uint32(0xdeadbeef), uint16(0x1234), byte(0x42))
	f.Add(uint32(0xffffffff), uint16(0xffff), byte(0xff))

	f.Fuzz(func(t *testing.T, u32 uint32, u16 uint16, b byte) {
		w := NewBufferWriter(8)
		w.WriteUint32(u32)
		w.WriteUint16(u16)
		w.WriteByte(b)

		r := NewReader(w.Bytes())
		if got, _ := r.ReadUint32(); got != u32 {
			t.Errorf("uint32 round trip = 0x%08X, want 0x%08X", got, u32)
		}
		if got, _ := r.ReadUint16(); got != u16 {
			t.Errorf("uint16 round trip = 0x%04X, want 0x%04X", got, u16)
		}
		if got, _ := r.ReadByte(); got != b {
			t.Errorf("byte round trip = 0x%02X, want 0x%02X", got, b)
		}
	})
}
