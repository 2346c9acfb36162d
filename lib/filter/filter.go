// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package filter provides optional pre-armor compression.
//
// Paper armor pays per symbol, so compressible inputs shrink the
// printed page considerably. A filter transforms the raw input before
// it enters the codec; the filtered bytes are what the chunk codec
// and per-line CRC see. The applied filter is recorded in the armor
// trailer so the decode side can reverse it after the armor layer.
// Filter names are format constants — changing one breaks decoding of
// existing armor files.
//
// Both compressed formats are the self-framing variants (zstd frames,
// LZ4 frame format) rather than raw blocks, because the decode side
// does not know the uncompressed size up front.
package filter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Filter identifies a pre-armor compression algorithm.
type Filter uint8

const (
	// None passes the input through unchanged.
	None Filter = iota

	// LZ4 frame compression. Fast, modest ratios.
	LZ4

	// Zstd compression at the default level. Better ratios for text
	// and structured data.
	Zstd
)

// String returns the filter's trailer name.
func (f Filter) String() string {
	switch f {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// Parse resolves a trailer name or flag value to a Filter.
func Parse(name string) (Filter, error) {
	switch name {
	case "none", "":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return 0, fmt.Errorf("unknown filter: %q", name)
	}
}

// zstdEncoder and zstdDecoder are reused across calls to avoid
// repeated initialization overhead. Both are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("filter: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("filter: zstd decoder initialization failed: " + err.Error())
	}
}

// Compress applies the filter to data. For None, data is returned
// unchanged (no copy).
func Compress(data []byte, f Filter) ([]byte, error) {
	switch f {
	case None:
		return data, nil

	case LZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	case Zstd:
		return zstdEncoder.EncodeAll(data, nil), nil

	default:
		return nil, fmt.Errorf("unsupported filter: %d", f)
	}
}

// Decompress reverses the filter applied to data. For None, data is
// returned unchanged (no copy).
func Decompress(data []byte, f Filter) ([]byte, error) {
	switch f {
	case None:
		return data, nil

	case LZ4:
		decompressed, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return decompressed, nil

	case Zstd:
		decompressed, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return decompressed, nil

	default:
		return nil, fmt.Errorf("unsupported filter: %d", f)
	}
}
