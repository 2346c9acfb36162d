// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

package chunk

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/asaddi/hardback/lib/alphabet"
)

func TestEncodeGolden(t *testing.T) {
	got := Encode([]byte("0123456789abcdefghijklmnopqrstuvwxyz"))
	want := "ojcru3ogitpqdhr8buagg1icg53oswjpmd54gz7pomhrz3tqiu7q8hfx4d======"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestDecodeGolden(t *testing.T) {
	got, err := Decode([]byte("ojcru3ogitpqdhr8buagg1icg53oswjpmd54gz7pomhrz3tqiu7q8hfx4d======"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []byte("0123456789abcdefghijklmnopqrstuvwxyz")
	if !bytes.Equal(got, want) {
		t.Errorf("Decode = %q, want %q", got, want)
	}
}

func TestSignificantSymbolCounts(t *testing.T) {
	// Undersized terminal groups emit a fixed number of significant
	// symbols and fill the rest of the frame with the pad character.
	wantSignificant := map[int]int{1: 2, 2: 4, 3: 5, 4: 7, 5: 8}

	for rawLength, significant := range wantSignificant {
		encoded := Encode(bytes.Repeat([]byte{0xFF}, rawLength))
		if len(encoded) != EncodedSymbols {
			t.Errorf("len(Encode(%d bytes)) = %d, want %d", rawLength, len(encoded), EncodedSymbols)
			continue
		}
		pads := strings.Count(string(encoded), string(alphabet.Pad))
		if EncodedSymbols-pads != significant {
			t.Errorf("Encode(%d bytes) has %d significant symbols, want %d",
				rawLength, EncodedSymbols-pads, significant)
		}
		if !strings.HasSuffix(string(encoded), strings.Repeat(string(alphabet.Pad), EncodedSymbols-significant)) {
			t.Errorf("Encode(%d bytes) = %q: pad characters must be a suffix", rawLength, encoded)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Every raw length through two full groups plus a remainder,
	// with content that exercises all byte values.
	data := make([]byte, 13)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}

	for length := 0; length <= len(data); length++ {
		decoded, err := Decode(Encode(data[:length]))
		if err != nil {
			t.Fatalf("Decode(Encode(%d bytes)): %v", length, err)
		}
		if !bytes.Equal(decoded, data[:length]) {
			t.Errorf("round trip of %d bytes = %x, want %x", length, decoded, data[:length])
		}
	}
}

func TestRoundTripAllByteValues(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	decoded, err := Decode(Encode(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Error("round trip of all byte values failed")
	}
}

func TestStripPaddingValid(t *testing.T) {
	tests := []struct {
		input        string
		wantStripped string
		wantRaw      int
	}{
		{"yyyyyyyy", "yyyyyyyy", 5},
		{"yyyyyyy=", "yyyyyyy", 4},
		{"yyyyy===", "yyyyy", 3},
		{"yyyy====", "yyyy", 2},
		{"yy======", "yy", 1},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			stripped, rawCount, err := stripPadding([]byte(test.input))
			if err != nil {
				t.Fatalf("stripPadding(%q): %v", test.input, err)
			}
			if string(stripped) != test.wantStripped || rawCount != test.wantRaw {
				t.Errorf("stripPadding(%q) = (%q, %d), want (%q, %d)",
					test.input, stripped, rawCount, test.wantStripped, test.wantRaw)
			}
		})
	}
}

func TestStripPaddingInvalid(t *testing.T) {
	// Pad counts the encoder can never produce, including all-pad.
	for _, input := range []string{"yyyyyy==", "yyy=====", "y=======", "========"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := stripPadding([]byte(input))
			if !errors.Is(err, ErrPadding) {
				t.Errorf("stripPadding(%q) error = %v, want ErrPadding", input, err)
			}
		})
	}
}

func TestStripPaddingShortGroups(t *testing.T) {
	// A non-frame-aligned terminal group carries no padding; its raw
	// count is ceil(n*5/8), so excess bits spill into an extra byte.
	wantRaw := map[int]int{1: 1, 2: 2, 3: 2, 4: 3, 5: 4, 6: 4, 7: 5}

	for length, want := range wantRaw {
		input := bytes.Repeat([]byte{'y'}, length)
		stripped, rawCount, err := stripPadding(input)
		if err != nil {
			t.Fatalf("stripPadding(%d symbols): %v", length, err)
		}
		if !bytes.Equal(stripped, input) || rawCount != want {
			t.Errorf("stripPadding(%d symbols) = (%q, %d), want (%q, %d)",
				length, stripped, rawCount, input, want)
		}
	}
}

func TestDecodeEmptyGroupRejected(t *testing.T) {
	_, _, err := stripPadding(nil)
	if !errors.Is(err, ErrChunkLength) {
		t.Errorf("stripPadding(empty) error = %v, want ErrChunkLength", err)
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := Decode([]byte("yyvyyyyy"))
	if !errors.Is(err, alphabet.ErrInvalidCharacter) {
		t.Fatalf("Decode error = %v, want ErrInvalidCharacter", err)
	}
	if !strings.Contains(err.Error(), "'v'") {
		t.Errorf("error %q should name the offending character", err)
	}
}

func TestDecodeInteriorPadRejected(t *testing.T) {
	// A pad character before the significant region is not a valid
	// data symbol. The group "yy==yyyy" has no pad suffix, so all 8
	// positions are treated as significant and the interior '='
	// surfaces as an invalid character.
	_, err := Decode([]byte("yy==yyyy"))
	if err == nil {
		t.Fatal("Decode should reject interior pad characters")
	}
}

func TestEncodeEmpty(t *testing.T) {
	if encoded := Encode(nil); len(encoded) != 0 {
		t.Errorf("Encode(nil) = %q, want empty", encoded)
	}
	decoded, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("Decode(nil) = %x, want empty", decoded)
	}
}

func TestLengthHelpers(t *testing.T) {
	if got := RawLength(64); got != 40 {
		t.Errorf("RawLength(64) = %d, want 40", got)
	}
	if got := EncodedLength(40); got != 64 {
		t.Errorf("EncodedLength(40) = %d, want 64", got)
	}
	if got := EncodedLength(36); got != 64 {
		t.Errorf("EncodedLength(36) = %d, want 64", got)
	}
	if got := EncodedLength(0); got != 0 {
		t.Errorf("EncodedLength(0) = %d, want 0", got)
	}
}
