// Package store provides the input sources roomkey reads its records from.
//
// It contains concrete implementations of domain.InputSource. Input is read
// exactly once per run; nothing is ever written back.
//
// The package includes sources for:
//   - A file on disk or standard input (FileSource)
//   - An in-memory blob (BytesSource)
package store
