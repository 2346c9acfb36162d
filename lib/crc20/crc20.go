// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package crc20 implements the 20-bit cyclic redundancy check that
// guards every armor line.
//
// The polynomial is 0x1C4047, selected from Koopman's CRC tables for
// its Hamming distance 6 guarantee over up to 494 bits of data — well
// beyond the 400 raw bits a full-width chunk group sequence puts on
// one line. The accumulator is threaded across the entire raw stream
// in stream order; line boundaries are a framing convenience and do
// not reset or otherwise influence it.
//
// The implementation is the bit-serial reference form: one conditional
// XOR per input bit, most significant bit first. It is deliberately
// direct so it can be audited against the self-check vector
// (Checksum("123456789") == 0xA5448, enforced by a test) rather than
// fast; armor streams are small.
package crc20

import (
	"fmt"

	"github.com/asaddi/hardback/lib/chunk"
)

const (
	// Polynomial is the XOR constant applied when the bit shifted out
	// of the 20-bit register is set. The conventional name of the
	// polynomial, 0x1C4047, includes the implicit x^20 term; the
	// register arithmetic uses the low 20 bits.
	Polynomial = 0xC4047

	// Mask constrains the register to 20 bits.
	Mask = 0xFFFFF

	// Check is the accumulator value for the ASCII message
	// "123456789". Any reimplementation must reproduce it before
	// being trusted.
	Check = 0xA5448

	// SerializedBytes is the little-endian byte width of a
	// serialized accumulator (20 bits in 3 bytes, top 4 bits zero).
	SerializedBytes = 3

	// EncodedSymbols is the symbol width of a serialized accumulator:
	// the 4 significant symbols of a 3-byte chunk group carry exactly
	// 20 bits.
	EncodedSymbols = 4
)

// Update feeds data through the CRC register and returns the new
// accumulator. Start a stream with accumulator 0 and thread the
// returned value through successive calls in stream order.
func Update(crc uint32, data []byte) uint32 {
	for _, c := range data {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			out := crc&0x80000 != 0
			if c&mask != 0 {
				out = !out
			}
			crc <<= 1
			if out {
				crc ^= Polynomial
			}
		}
		crc &= Mask
	}
	return crc
}

// Checksum returns the accumulator for data processed as a complete
// stream.
func Checksum(data []byte) uint32 {
	return Update(0, data)
}

// Serialize encodes an accumulator as its canonical 4-symbol form:
// the 20-bit value is split into 3 little-endian bytes and passed
// through the chunk encoder, keeping only the 4 significant symbols.
func Serialize(crc uint32) []byte {
	raw := []byte{
		byte(crc),
		byte(crc >> 8),
		byte(crc >> 16),
	}
	return chunk.Encode(raw)[:EncodedSymbols]
}

// Deserialize decodes a 4-symbol checksum suffix back to the 20-bit
// accumulator it encodes.
func Deserialize(symbols []byte) (uint32, error) {
	if len(symbols) != EncodedSymbols {
		return 0, fmt.Errorf("checksum is %d symbols, want %d", len(symbols), EncodedSymbols)
	}
	raw, err := chunk.Decode(symbols)
	if err != nil {
		return 0, err
	}

	var crc uint32
	for i := len(raw) - 1; i >= 0; i-- {
		crc = crc<<8 | uint32(raw[i])
	}
	return crc, nil
}
