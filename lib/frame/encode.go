// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"errors"
	"fmt"

	"github.com/asaddi/hardback/lib/chunk"
	"github.com/asaddi/hardback/lib/crc20"
)

// MinLineSymbols is the shortest well-formed line: one chunk group of
// payload plus the checksum suffix.
const MinLineSymbols = chunk.EncodedSymbols + crc20.EncodedSymbols

// ErrInvalidWidth reports a line width that is not a positive
// multiple of the chunk frame width.
var ErrInvalidWidth = errors.New("line width must be a positive multiple of 8")

// Encode splits data into lines of width payload symbols and returns
// them in stream order. Width must be a positive multiple of 8; each
// line carries width*5/8 raw bytes, except the last line of a stream
// whose length is not a multiple of that raw width. Every line ends
// with the 4-symbol serialization of the CRC-20 accumulator over all
// raw bytes up to and including that line. Zero-length data produces
// zero lines.
func Encode(data []byte, width int) ([]string, error) {
	if width <= 0 || width%chunk.EncodedSymbols != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	rawWidth := chunk.RawLength(width)
	lines := make([]string, 0, (len(data)+rawWidth-1)/rawWidth)

	var crc uint32
	for len(data) > 0 {
		segment := data
		if len(segment) > rawWidth {
			segment = segment[:rawWidth]
		}
		crc = crc20.Update(crc, segment)

		line := make([]byte, 0, width+crc20.EncodedSymbols)
		line = append(line, chunk.Encode(segment)...)
		line = append(line, crc20.Serialize(crc)...)
		lines = append(lines, string(line))

		data = data[len(segment):]
	}
	return lines, nil
}
