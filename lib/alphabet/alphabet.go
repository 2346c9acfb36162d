// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package alphabet defines the 32-symbol encoding alphabet and its
// inverse lookup table.
//
// The alphabet is the z-base-32 character set: chosen for easy human
// transcription (no 0/o, 1/l, 2/z ambiguity in handwriting, frequent
// values map to easy characters). Index position is the 5-bit value a
// symbol encodes. The pad character '=' marks unused positions in an
// undersized terminal chunk group and is never a data symbol.
//
// Both tables are built once at init and are read-only thereafter, so
// they may be shared freely across goroutines.
package alphabet

import (
	"errors"
	"fmt"
)

// Symbols is the encoding alphabet. The byte at index v is the symbol
// for the 5-bit value v.
const Symbols = "ybndrfg8ejkmcpqxot1uwisza345h769"

// Size is the number of symbols in the alphabet (one per 5-bit value).
const Size = 32

// Pad is the filler character for unused positions in an undersized
// terminal chunk group. It is not part of the alphabet.
const Pad byte = '='

// ErrInvalidCharacter reports a byte that is neither an alphabet
// symbol nor the pad character where a symbol was expected.
var ErrInvalidCharacter = errors.New("invalid character")

// decodeTable maps a symbol byte to its 5-bit value. Entries for
// bytes outside the alphabet are -1.
var decodeTable [256]int8

func init() {
	if len(Symbols) != Size {
		panic(fmt.Sprintf("alphabet: %d symbols, want %d", len(Symbols), Size))
	}
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for value := 0; value < Size; value++ {
		symbol := Symbols[value]
		if symbol == Pad {
			panic("alphabet: pad character collides with a symbol")
		}
		if decodeTable[symbol] != -1 {
			panic(fmt.Sprintf("alphabet: duplicate symbol %q", symbol))
		}
		decodeTable[symbol] = int8(value)
	}
}

// Symbol returns the alphabet symbol for a 5-bit value. Panics if
// value is 32 or larger (programming error, not runtime data).
func Symbol(value byte) byte {
	if value >= Size {
		panic(fmt.Sprintf("alphabet: value %d out of range", value))
	}
	return Symbols[value]
}

// Value returns the 5-bit value encoded by symbol. The error names
// the offending character so the caller can report which byte of the
// input is corrupt.
func Value(symbol byte) (byte, error) {
	decoded := decodeTable[symbol]
	if decoded < 0 {
		return 0, fmt.Errorf("%w %q", ErrInvalidCharacter, rune(symbol))
	}
	return byte(decoded), nil
}
