// Package rawutil provides higher-level operations for working with img2raw
// files: composing complete files from in-memory images, summarizing and
// validating existing files, and an optional zlib transport envelope.
//
// The envelope is not part of the img2raw format itself. A wrapped file is an
// ordinary zlib stream whose decompressed content is a regular img2raw file;
// IsCompressed detects the wrapping so tools can handle both transparently.
package rawutil

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"

	"github.com/mrjoshuak/go-img2raw/raw"
)

// WriteOptions controls how Write composes an img2raw file.
type WriteOptions struct {
	// ColorSpace is recorded in the header and identifies the color space the
	// pixel samples are already in. Write performs no conversion.
	ColorSpace raw.ColorSpace

	// DataFormat selects the pixel-data byte layout.
	DataFormat raw.DataFormat

	// Header controls whether the 16-byte header is prepended. Without it the
	// consumer must know color space, format and dimensions out-of-band.
	Header bool

	// Compress wraps the entire output in a zlib stream.
	Compress bool
}

// Write encodes img and writes a complete img2raw file to w.
func Write(w io.Writer, img *raw.Image, opts WriteOptions) error {
	if !opts.DataFormat.Valid() {
		return raw.ErrUnknownDataFormat
	}

	out := w
	var zw *zlib.Writer
	if opts.Compress {
		zw = zlib.NewWriter(w)
		out = zw
	}

	if opts.Header {
		h := raw.NewHeader(opts.ColorSpace, opts.DataFormat, img.Width, img.Height)
		if _, err := h.WriteTo(out); err != nil {
			return err
		}
	}

	if err := raw.EncodeTo(out, img, opts.DataFormat); err != nil {
		return err
	}

	if zw != nil {
		return zw.Close()
	}
	return nil
}

// WriteFile encodes img and writes a complete img2raw file to path.
func WriteFile(path string, img *raw.Image, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := Write(bw, img, opts); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// IsCompressed reports whether the first bytes of a file look like the zlib
// transport envelope. A valid zlib stream starts with a 0x78 CMF byte and a
// header checksum divisible by 31; no img2raw header starts that way for any
// known color space code.
func IsCompressed(prefix []byte) bool {
	if len(prefix) < 2 {
		return false
	}
	if prefix[0] != 0x78 {
		return false
	}
	return (uint(prefix[0])<<8|uint(prefix[1]))%31 == 0
}

// FileInfo summarizes an img2raw file with a header.
type FileInfo struct {
	Path       string
	FileSize   int64 // size on disk, envelope included
	Compressed bool  // wrapped in the zlib transport envelope

	Header raw.Header

	// ColorSpace and DataFormat are the resolved header codes; the Known
	// flags are false when a code matches no variant.
	ColorSpace      raw.ColorSpace
	ColorSpaceKnown bool
	DataFormat      raw.DataFormat
	DataFormatKnown bool

	// PayloadSize is the actual pixel-data byte count following the header.
	// ExpectedSize is what the header's format and dimensions require; it is
	// only meaningful when DataFormatKnown is true.
	PayloadSize  int64
	ExpectedSize int64
}

// SizeMatches reports whether the payload length matches the header.
func (fi *FileInfo) SizeMatches() bool {
	return fi.DataFormatKnown && fi.PayloadSize == fi.ExpectedSize
}

// ReadFileInfo reads the header of the img2raw file at path and summarizes
// it. The pixel data is sized but not decoded. Unknown enumeration codes are
// reported through the Known flags, not as errors; a missing or truncated
// header is an error.
func ReadFileInfo(path string) (*FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	info := &FileInfo{Path: path, FileSize: stat.Size()}

	br := bufio.NewReader(f)
	prefix, err := br.Peek(2)
	if err != nil {
		return nil, raw.ErrShortHeader
	}

	var src io.Reader = br
	if IsCompressed(prefix) {
		info.Compressed = true
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("rawutil: open envelope: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	info.Header, err = raw.ReadHeader(src)
	if err != nil {
		return nil, err
	}
	info.ColorSpace, info.ColorSpaceKnown = info.Header.ResolveColorSpace()
	info.DataFormat, info.DataFormatKnown = info.Header.ResolveDataFormat()

	if info.DataFormatKnown {
		info.ExpectedSize = int64(info.DataFormat.DataSize(int(info.Header.Width), int(info.Header.Height)))
	}

	// Count the remaining payload without keeping it.
	info.PayloadSize, err = io.Copy(io.Discard, src)
	if err != nil {
		return nil, err
	}

	return info, nil
}
