// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package chunk converts between raw bytes and alphabet symbols in
// 40-bit groups.
//
// Forty bits is the least common multiple of the two unit widths: 5
// raw bytes (8 bits each) pack into exactly 8 symbols (5 bits each).
// A group is interpreted as a 40-bit little-endian integer — the first
// raw byte occupies the least significant 8 bits — and symbols are
// emitted low 5 bits first. An undersized terminal group emits only
// its significant symbols and fills the rest of the 8-symbol frame
// with the pad character; trailing symbol positions that would encode
// nothing but zero padding bits are suppressed, which is why the
// significant-symbol count is a fixed table rather than plain ceiling
// division.
package chunk

import (
	"errors"

	"github.com/asaddi/hardback/lib/alphabet"
)

const (
	// RawBytes is the raw width of a full chunk group.
	RawBytes = 5

	// EncodedSymbols is the encoded width of a chunk group. Encoded
	// output is always frame-aligned to this width.
	EncodedSymbols = 8
)

var (
	// ErrChunkLength reports an encoded group whose length cannot
	// correspond to any raw byte count.
	ErrChunkLength = errors.New("invalid chunk length")

	// ErrPadding reports an 8-symbol group whose pad suffix does not
	// match any of the five patterns the encoder can produce.
	ErrPadding = errors.New("invalid padding")
)

// significantSymbols[n] is the number of symbol positions that carry
// data when a group holds n raw bytes. Positions beyond it, up to the
// 8-symbol frame, hold only zero bits from the conceptual zero-byte
// padding and are emitted as the pad character instead.
//
//	1 byte  ->  2 symbols  (ddxxxxxx)
//	2 bytes ->  4 symbols  (ddddxxxx)
//	3 bytes ->  5 symbols  (dddddxxx)
//	4 bytes ->  7 symbols  (dddddddx)
//	5 bytes ->  8 symbols  (dddddddd)
var significantSymbols = [RawBytes + 1]int{0, 2, 4, 5, 7, 8}

// Encode converts raw bytes to symbols, walking the input in chunk
// groups of up to RawBytes. Output length is always a multiple of
// EncodedSymbols; an undersized final group is padded to the frame
// boundary with the pad character. Encoding zero bytes yields zero
// symbols.
func Encode(data []byte) []byte {
	out := make([]byte, 0, (len(data)+RawBytes-1)/RawBytes*EncodedSymbols)
	for len(data) > 0 {
		group := data
		if len(group) > RawBytes {
			group = group[:RawBytes]
		}
		out = encodeGroup(group, out)
		data = data[len(group):]
	}
	return out
}

// encodeGroup appends one group's symbols (frame-aligned) to out.
// group must hold 1 to RawBytes bytes.
func encodeGroup(group []byte, out []byte) []byte {
	// Little-endian packing: the first byte lands in the low 8 bits.
	// Missing bytes of an undersized group are zero.
	var value uint64
	for i := len(group) - 1; i >= 0; i-- {
		value = value<<8 | uint64(group[i])
	}

	significant := significantSymbols[len(group)]
	for i := 0; i < significant; i++ {
		out = append(out, alphabet.Symbol(byte(value&0x1F)))
		value >>= 5
	}
	for i := significant; i < EncodedSymbols; i++ {
		out = append(out, alphabet.Pad)
	}
	return out
}

// Decode converts symbols back to raw bytes, walking the input in
// groups of EncodedSymbols. Only the final group may be shorter than
// the frame width (the terminal group of a stream whose encoded
// length is not frame-aligned, such as a checksum suffix). Decoding
// zero symbols yields zero bytes.
func Decode(symbols []byte) ([]byte, error) {
	out := make([]byte, 0, len(symbols)/EncodedSymbols*RawBytes+RawBytes)
	for len(symbols) > 0 {
		group := symbols
		if len(group) > EncodedSymbols {
			group = group[:EncodedSymbols]
		}
		var err error
		out, err = decodeGroup(group, out)
		if err != nil {
			return nil, err
		}
		symbols = symbols[len(group):]
	}
	return out, nil
}

// decodeGroup decodes one encoded group, appending its raw bytes to
// out.
func decodeGroup(group []byte, out []byte) ([]byte, error) {
	stripped, rawCount, err := stripPadding(group)
	if err != nil {
		return nil, err
	}

	// Symbol positions beyond the stripped length encode zero, so
	// there is no need to materialize the zero-value padding: the
	// high bits of value simply stay clear.
	var value uint64
	for i := len(stripped) - 1; i >= 0; i-- {
		decoded, err := alphabet.Value(stripped[i])
		if err != nil {
			return nil, err
		}
		value = value<<5 | uint64(decoded)
	}

	for i := 0; i < rawCount; i++ {
		out = append(out, byte(value&0xFF))
		value >>= 8
	}
	return out, nil
}

// stripPadding removes a recognized pad suffix from an encoded group
// and reports how many raw bytes the remaining symbols carry.
//
// A full 8-symbol group accepts exactly the five suffixes the encoder
// produces (0, 1, 3, 4, or 6 trailing pads); any other pad count is
// corrupt. A shorter group carries no padding at all — it can only be
// the terminal group of a non-frame-aligned encoded stream — and its
// raw count is ceil(n*5/8), so excess bits spill into one extra byte.
func stripPadding(group []byte) ([]byte, int, error) {
	if len(group) < EncodedSymbols {
		if len(group) == 0 {
			return nil, 0, ErrChunkLength
		}
		return group, (len(group)*5 + 7) / 8, nil
	}

	last := -1
	for i := len(group) - 1; i >= 0; i-- {
		if group[i] != alphabet.Pad {
			last = i
			break
		}
	}

	// Inverse of the significant-symbol table. Only these pad
	// positions can come out of the encoder.
	var rawCount, significant int
	switch last {
	case 7:
		rawCount, significant = 5, 8
	case 6:
		rawCount, significant = 4, 7
	case 4:
		rawCount, significant = 3, 5
	case 3:
		rawCount, significant = 2, 4
	case 1:
		rawCount, significant = 1, 2
	default:
		return nil, 0, ErrPadding
	}
	return group[:significant], rawCount, nil
}

// RawLength returns the number of raw bytes that encodedLength
// symbols decode to, assuming a frame-aligned stream with a full
// final group. Useful for sizing buffers; never an error.
func RawLength(encodedLength int) int {
	return encodedLength * RawBytes / EncodedSymbols
}

// EncodedLength returns the frame-aligned number of symbols that
// rawLength bytes encode to.
func EncodedLength(rawLength int) int {
	groups := (rawLength + RawBytes - 1) / RawBytes
	return groups * EncodedSymbols
}
