// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest selects the whole-stream hash reported in armor
// trailers.
//
// The per-line CRC-20 catches transcription errors as they are typed
// back in; the trailer digest is the end-to-end check over the entire
// original input, consumed as an opaque utility. SHA-256 is the
// default. BLAKE3 and BLAKE2b are offered for callers standardized on
// them; all three produce 32-byte digests, reported as lowercase hex.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Algorithm identifies a trailer digest algorithm. The string form is
// the trailer comment key, so changing a name breaks compatibility
// with existing armor files.
type Algorithm uint8

const (
	// SHA256 is the default trailer digest.
	SHA256 Algorithm = iota

	// BLAKE3 (zeebo/blake3, default 256-bit output).
	BLAKE3

	// BLAKE2b with 256-bit output.
	BLAKE2b
)

// String returns the algorithm's trailer key.
func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case BLAKE3:
		return "blake3"
	case BLAKE2b:
		return "blake2b"
	default:
		return fmt.Sprintf("unknown(%d)", a)
	}
}

// Parse resolves a trailer key or flag value to an Algorithm.
func Parse(name string) (Algorithm, error) {
	switch name {
	case "sha256":
		return SHA256, nil
	case "blake3":
		return BLAKE3, nil
	case "blake2b":
		return BLAKE2b, nil
	default:
		return 0, fmt.Errorf("unknown digest algorithm: %q", name)
	}
}

// Sum returns the hex-encoded digest of data.
func (a Algorithm) Sum(data []byte) string {
	var digest [32]byte
	switch a {
	case SHA256:
		digest = sha256.Sum256(data)
	case BLAKE3:
		digest = blake3.Sum256(data)
	case BLAKE2b:
		digest = blake2b.Sum256(data)
	default:
		panic(fmt.Sprintf("digest: unknown algorithm %d", a))
	}
	return hex.EncodeToString(digest[:])
}
