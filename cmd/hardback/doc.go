// Copyright 2026 The Hardback Authors
// SPDX-License-Identifier: Apache-2.0

// Hardback encodes arbitrary binary data as line-oriented text built
// for transcription by hand: a 32-symbol alphabet chosen to survive
// handwriting, a CRC-20 check on every line so typos are caught at
// the line that contains them, and a trailer declaring the length and
// digest of the original input for end-to-end verification.
//
// Encoding reads the whole input (file argument or stdin), writes
// armor lines plus '#' trailer comments to the output (--output or
// stdout), and reports the input length and digest on stderr.
// Decoding reverses the process: blank lines and comments are
// skipped, each line's checksum is validated, and decoding stops at
// the terminal line. With --verify, the declared length and digest
// trailers are checked against the decoded output. Decoded binary is
// not written to a terminal unless --force is given.
//
// Defaults (line width, digest algorithm, filter) may come from a
// YAML file named by HARDBACK_CONFIG or --config; flags override it.
//
// Exit codes:
//
//	0  success
//	1  codec, verification, or I/O failure
//	2  bad arguments or configuration
package main
