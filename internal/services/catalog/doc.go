// Package catalog aggregates parsed room records and answers queries over them.
//
// A Catalog is built once, either from lines (Load) or from an input source
// through Service.Load, and is read-only afterwards. Loading fails on the
// first malformed line; no partial catalog is ever returned.
//
// Queries
//
//   - SumValidSectors: total sector id of every record whose checksum holds.
//   - FindSector: first valid record, in input order, whose decrypted name
//     contains a target substring (case-sensitive).
//   - Rooms: every record with its validity and, when valid, its decrypted name.
package catalog
