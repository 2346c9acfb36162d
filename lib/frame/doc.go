// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Package frame assembles and parses armor lines.
//
// A line is a payload of chunk-encoded symbols (a positive multiple
// of 8, frame-aligned via the chunk padding mechanism) followed by a
// 4-symbol suffix encoding the CRC-20 accumulator as of the end of
// that line's raw data. The accumulator runs over the whole raw
// stream in stream order, so lines must be produced and consumed
// strictly sequentially; the line structure exists only to give a
// human transcriber a per-line error check.
//
// The format is self-describing: end of stream is signaled by an
// undersized terminal chunk group, never by a declared length. A line
// that decodes to fewer raw bytes than a single chunk group holds is
// the terminal line; the decoder stops there even if further lines
// follow. A zero-length stream encodes to zero lines and zero lines
// decode to a zero-length stream.
//
// [Encode] and [Decode] operate on complete in-memory streams. Input
// hygiene — trimming whitespace, dropping blank and '#' comment lines
// — is the caller's job; every line handed to Decode is treated as
// data.
package frame
