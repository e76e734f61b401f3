// Package crypto holds the room-record primitives used by roomkey.
//
// Contents
//
//   - Letter-frequency checksum and validation (Checksum, Valid)
//   - Rotation cipher over the 26-letter alphabet (Rotate, RotateString)
//   - Short input fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Checksum ordering comes only from an explicit sort (count descending,
// then letter ascending); map iteration order never reaches the output.
// Rotation shifts are normalised into [0,26) before any arithmetic.
package crypto
