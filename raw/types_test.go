package raw

import (
	"testing"
)

func TestColorSpaceDiscriminants(t *testing.T) {
	// On-disk codes, fixed forever.
	tests := []struct {
		cs   ColorSpace
		code uint32
		name string
	}{
		{ColorSpaceNonColor, 0, "NonColor"},
		{ColorSpaceCIEXYZ, 1, "CIEXYZ"},
		{ColorSpaceSRGB, 2, "SRGB"},
		{ColorSpaceLinearSRGB, 3, "LinearSRGB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint32(tt.cs) != tt.code {
				t.Errorf("discriminant = %d, want %d", uint32(tt.cs), tt.code)
			}
			if tt.cs.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.cs.String(), tt.name)
			}

			got, ok := ColorSpaceFromUint32(tt.code)
			if !ok || got != tt.cs {
				t.Errorf("ColorSpaceFromUint32(%d) = %v, %v", tt.code, got, ok)
			}

			parsed, err := ParseColorSpace(tt.name)
			if err != nil || parsed != tt.cs {
				t.Errorf("ParseColorSpace(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestDataFormatDiscriminants(t *testing.T) {
	tests := []struct {
		df   DataFormat
		code uint32
		name string
	}{
		{DataFormatR32F, 0, "R32F"},
		{DataFormatRG32F, 1, "RG32F"},
		{DataFormatRGBA32F, 2, "RGBA32F"},
		{DataFormatR8, 3, "R8"},
		{DataFormatPackedR8, 4, "PackedR8"},
		{DataFormatR16F, 5, "R16F"},
		{DataFormatRG16F, 6, "RG16F"},
		{DataFormatRGBA16F, 7, "RGBA16F"},
		{DataFormatPackedR16F, 8, "PackedR16F"},
		{DataFormatRGBE8, 9, "RGBE8"},
		{DataFormatRGBA8, 10, "RGBA8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint32(tt.df) != tt.code {
				t.Errorf("discriminant = %d, want %d", uint32(tt.df), tt.code)
			}
			if tt.df.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.df.String(), tt.name)
			}

			got, ok := DataFormatFromUint32(tt.code)
			if !ok || got != tt.df {
				t.Errorf("DataFormatFromUint32(%d) = %v, %v", tt.code, got, ok)
			}

			parsed, err := ParseDataFormat(tt.name)
			if err != nil || parsed != tt.df {
				t.Errorf("ParseDataFormat(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestUnknownDiscriminants(t *testing.T) {
	for _, code := range []uint32{4, 5, 100, 0xFFFFFFFF} {
		if _, ok := ColorSpaceFromUint32(code); ok {
			t.Errorf("ColorSpaceFromUint32(%d) unexpectedly ok", code)
		}
	}
	for _, code := range []uint32{11, 12, 100, 0xFFFFFFFF} {
		if _, ok := DataFormatFromUint32(code); ok {
			t.Errorf("DataFormatFromUint32(%d) unexpectedly ok", code)
		}
	}
}

func TestParseRejectsNonCanonicalText(t *testing.T) {
	// Matching is exact and case-sensitive.
	for _, s := range []string{"", "srgb", "SRGB ", "Srgb", "sRGB", "NONCOLOR", "unknown"} {
		if _, err := ParseColorSpace(s); err != ErrUnknownColorSpace {
			t.Errorf("ParseColorSpace(%q) err = %v, want ErrUnknownColorSpace", s, err)
		}
	}
	for _, s := range []string{"", "r32f", "RGBA8 ", "rgbe8", "R32", "unknown"} {
		if _, err := ParseDataFormat(s); err != ErrUnknownDataFormat {
			t.Errorf("ParseDataFormat(%q) err = %v, want ErrUnknownDataFormat", s, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, cs := range ColorSpaces() {
		got, err := ParseColorSpace(cs.String())
		if err != nil || got != cs {
			t.Errorf("ParseColorSpace(%q) = %v, %v, want %v", cs.String(), got, err, cs)
		}
	}
	for _, df := range DataFormats() {
		got, err := ParseDataFormat(df.String())
		if err != nil || got != df {
			t.Errorf("ParseDataFormat(%q) = %v, %v, want %v", df.String(), got, err, df)
		}
	}
}

func TestDataFormatLayout(t *testing.T) {
	tests := []struct {
		df            DataFormat
		channels      int
		bytesPerChan  int
		bytesPerPixel int
		alignment     int
	}{
		{DataFormatR32F, 1, 4, 4, 4},
		{DataFormatRG32F, 2, 4, 8, 4},
		{DataFormatRGBA32F, 4, 4, 16, 4},
		{DataFormatR8, 1, 1, 1, 4},
		{DataFormatPackedR8, 1, 1, 1, 1},
		{DataFormatR16F, 1, 2, 2, 4},
		{DataFormatRG16F, 2, 2, 4, 4},
		{DataFormatRGBA16F, 4, 2, 8, 4},
		{DataFormatPackedR16F, 1, 2, 2, 2},
		{DataFormatRGBE8, 4, 1, 4, 4},
		{DataFormatRGBA8, 4, 1, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.df.String(), func(t *testing.T) {
			if got := tt.df.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.df.BytesPerChannel(); got != tt.bytesPerChan {
				t.Errorf("BytesPerChannel() = %d, want %d", got, tt.bytesPerChan)
			}
			if got := tt.df.BytesPerPixel(); got != tt.bytesPerPixel {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bytesPerPixel)
			}
			if got := tt.df.RowAlignment(); got != tt.alignment {
				t.Errorf("RowAlignment() = %d, want %d", got, tt.alignment)
			}
		})
	}
}

func TestRowSize(t *testing.T) {
	tests := []struct {
		df    DataFormat
		width int
		want  int
	}{
		// R8 and R16F pad to a 4-byte boundary.
		{DataFormatR8, 5, 8},
		{DataFormatR8, 4, 4},
		{DataFormatR8, 1, 4},
		{DataFormatR16F, 3, 8},
		{DataFormatR16F, 2, 4},
		{DataFormatR16F, 1, 4},
		// Packed variants never pad.
		{DataFormatPackedR8, 5, 5},
		{DataFormatPackedR16F, 3, 6},
		// Everything else is naturally aligned.
		{DataFormatR32F, 5, 20},
		{DataFormatRG32F, 3, 24},
		{DataFormatRGBA32F, 1, 16},
		{DataFormatRG16F, 3, 12},
		{DataFormatRGBA16F, 1, 8},
		{DataFormatRGBE8, 5, 20},
		{DataFormatRGBA8, 3, 12},
	}

	for _, tt := range tests {
		if got := tt.df.RowSize(tt.width); got != tt.want {
			t.Errorf("%v.RowSize(%d) = %d, want %d", tt.df, tt.width, got, tt.want)
		}
		if got := tt.df.DataSize(tt.width, 3); got != tt.want*3 {
			t.Errorf("%v.DataSize(%d, 3) = %d, want %d", tt.df, tt.width, got, tt.want*3)
		}
	}
}

func TestValid(t *testing.T) {
	if !ColorSpaceSRGB.Valid() {
		t.Error("ColorSpaceSRGB should be valid")
	}
	if ColorSpace(99).Valid() {
		t.Error("ColorSpace(99) should not be valid")
	}
	if !DataFormatRGBE8.Valid() {
		t.Error("DataFormatRGBE8 should be valid")
	}
	if DataFormat(11).Valid() {
		t.Error("DataFormat(11) should not be valid")
	}
}
