// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

package crc20

import (
	"testing"
)

func TestSelfCheck(t *testing.T) {
	// The published check value for CRC-20/0x1C4047. If this fails,
	// nothing else about the implementation can be trusted.
	if got := Checksum([]byte("123456789")); got != Check {
		t.Fatalf("Checksum(\"123456789\") = %#x, want %#x", got, Check)
	}
}

func TestUpdateIgnoresChunking(t *testing.T) {
	// The accumulator is a pure function of the byte stream: feeding
	// it in arbitrary pieces must match the one-shot value.
	data := []byte("The quick brown fox jumps over the lazy dog")
	want := Checksum(data)

	for split := 0; split <= len(data); split++ {
		crc := Update(0, data[:split])
		crc = Update(crc, data[split:])
		if crc != want {
			t.Errorf("split at %d: accumulator = %#x, want %#x", split, crc, want)
		}
	}

	bytewise := uint32(0)
	for i := range data {
		bytewise = Update(bytewise, data[i:i+1])
	}
	if bytewise != want {
		t.Errorf("byte-at-a-time accumulator = %#x, want %#x", bytewise, want)
	}
}

func TestUpdateStaysIn20Bits(t *testing.T) {
	crc := uint32(0)
	for i := 0; i < 256; i++ {
		crc = Update(crc, []byte{byte(i)})
		if crc&^uint32(Mask) != 0 {
			t.Fatalf("accumulator %#x exceeds 20 bits after byte %d", crc, i)
		}
	}
}

func TestSerializeGolden(t *testing.T) {
	// Checksum suffix of the reference armor line for the 36-byte
	// alphanumeric test vector.
	crc := Checksum([]byte("0123456789abcdefghijklmnopqrstuvwxyz"))
	if got := Serialize(crc); string(got) != "hkxj" {
		t.Errorf("Serialize(%#x) = %q, want %q", crc, got, "hkxj")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, crc := range []uint32{0, 1, Check, 0x12345, Mask} {
		symbols := Serialize(crc)
		if len(symbols) != EncodedSymbols {
			t.Fatalf("Serialize(%#x) is %d symbols, want %d", crc, len(symbols), EncodedSymbols)
		}
		decoded, err := Deserialize(symbols)
		if err != nil {
			t.Fatalf("Deserialize(%q): %v", symbols, err)
		}
		if decoded != crc {
			t.Errorf("round trip of %#x = %#x", crc, decoded)
		}
	}
}

func TestDeserializeWrongLength(t *testing.T) {
	for _, symbols := range []string{"", "yyy", "yyyyy"} {
		if _, err := Deserialize([]byte(symbols)); err == nil {
			t.Errorf("Deserialize(%q) should fail", symbols)
		}
	}
}

func TestDeserializeInvalidCharacter(t *testing.T) {
	if _, err := Deserialize([]byte("yy0y")); err == nil {
		t.Error("Deserialize should reject characters outside the alphabet")
	}
}

func TestEmptyUpdate(t *testing.T) {
	if got := Checksum(nil); got != 0 {
		t.Errorf("Checksum(nil) = %#x, want 0", got)
	}
	if got := Update(Check, nil); got != Check {
		t.Errorf("Update(Check, nil) = %#x, want unchanged", got)
	}
}
