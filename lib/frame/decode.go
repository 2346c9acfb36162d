// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"errors"
	"fmt"

	"github.com/asaddi/hardback/lib/chunk"
	"github.com/asaddi/hardback/lib/crc20"
)

var (
	// ErrLineTooShort reports a line below the minimum well-formed
	// width (one chunk group plus the checksum suffix).
	ErrLineTooShort = errors.New("line too short")

	// ErrLineLength reports a payload that is not a multiple of the
	// chunk frame width.
	ErrLineLength = errors.New("invalid line length")

	// ErrChecksum reports a line whose checksum suffix does not match
	// the running accumulator. The stream is corrupt; no correction
	// is attempted.
	ErrChecksum = errors.New("CRC error")
)

// Decode reassembles the raw stream from armor lines. Lines must be
// pre-filtered data lines in stream order; diagnostics carry 1-based
// line numbers relative to that sequence. Any structural, alphabet,
// or checksum error aborts the whole stream.
//
// A line whose final chunk group is undersized terminates the stream;
// any remaining lines are ignored.
func Decode(lines []string) ([]byte, error) {
	var out []byte
	var crc uint32

	for index, raw := range lines {
		lineNumber := index + 1

		if len(raw) < MinLineSymbols {
			return nil, fmt.Errorf("%w at line %d", ErrLineTooShort, lineNumber)
		}

		payload := []byte(raw[:len(raw)-crc20.EncodedSymbols])
		suffix := []byte(raw[len(raw)-crc20.EncodedSymbols:])

		if len(payload)%chunk.EncodedSymbols != 0 {
			return nil, fmt.Errorf("%w (%d) at line %d", ErrLineLength, len(raw), lineNumber)
		}

		segment, err := chunk.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("decode error at line %d: %w", lineNumber, err)
		}
		expected, err := crc20.Deserialize(suffix)
		if err != nil {
			return nil, fmt.Errorf("decode error at line %d: %w", lineNumber, err)
		}

		crc = crc20.Update(crc, segment)
		if crc != expected {
			return nil, fmt.Errorf("%w at line %d", ErrChecksum, lineNumber)
		}

		out = append(out, segment...)

		// A segment too short to fill even one chunk group signals
		// end of stream.
		if len(segment) < chunk.RawBytes {
			break
		}
	}
	return out, nil
}
