// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package trailer reads and writes the '#' comment lines that follow
// the armor payload.
//
// Trailers are informational: the codec never needs them (the format
// is self-describing), and a decoder that discards every comment line
// still reconstructs the stream. They exist for two consumers: humans
// reading the printed page (declared length, digest, and a
// description of the alphabet and checksum so a from-scratch
// reimplementation can be checked), and the decode CLI's --verify
// mode, which compares the declared length and digest against the
// decoded output after the armor layer has done its work.
//
// Unknown comment keys are ignored so annotated or future armor files
// still parse.
package trailer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/asaddi/hardback/lib/alphabet"
	"github.com/asaddi/hardback/lib/crc20"
	"github.com/asaddi/hardback/lib/digest"
)

// Info is the machine-readable content of an armor trailer. Zero
// values ("" and -1) mean the corresponding line was absent.
type Info struct {
	// Length is the declared byte length of the original input, -1
	// when not declared.
	Length int64

	// Algorithm is the trailer key of the declared digest ("sha256",
	// "blake3", "blake2b"), "" when no digest line is present.
	Algorithm string

	// Digest is the declared hex digest of the original input.
	Digest string

	// Filter is the declared pre-armor compression filter name, ""
	// when none was recorded.
	Filter string
}

// Write emits the trailer comment lines for info: length, digest,
// filter (only when one was applied), and the fixed format
// description. Lines are newline-terminated.
func Write(w io.Writer, info Info) error {
	if info.Length >= 0 {
		if _, err := fmt.Fprintf(w, "# length: %d\n", info.Length); err != nil {
			return err
		}
	}
	if info.Algorithm != "" {
		if _, err := fmt.Fprintf(w, "# %s: %s\n", info.Algorithm, info.Digest); err != nil {
			return err
		}
	}
	if info.Filter != "" && info.Filter != "none" {
		if _, err := fmt.Fprintf(w, "# filter: %s\n", info.Filter); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# %s\n", FormatDescription())
	return err
}

// FormatDescription returns the fixed one-line description of the
// armor format: the alphabet, the CRC polynomial (conventional form,
// with the implicit x^20 term), and its check value.
func FormatDescription() string {
	return fmt.Sprintf("alphabet: %s, CRC-20 poly: %#x, check: %#x",
		alphabet.Symbols, 0x100000|crc20.Polynomial, crc20.Check)
}

// Parse extracts trailer info from the comment lines of an armor
// file, in order of appearance (later duplicates win). Lines may
// carry their leading '#'. Unknown keys are ignored; a malformed
// value for a known key is an error, since --verify would otherwise
// check against garbage.
func Parse(comments []string) (Info, error) {
	info := Info{Length: -1}

	for _, comment := range comments {
		line := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "#"))
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "length":
			length, err := strconv.ParseInt(value, 10, 64)
			if err != nil || length < 0 {
				return Info{}, fmt.Errorf("invalid length trailer %q", value)
			}
			info.Length = length

		case key == "filter":
			info.Filter = value

		case isDigestKey(key):
			info.Algorithm = key
			info.Digest = value
		}
	}
	return info, nil
}

// isDigestKey reports whether key names a known digest algorithm.
func isDigestKey(key string) bool {
	_, err := digest.Parse(key)
	return err == nil
}
