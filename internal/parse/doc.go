// Package parse turns room identifier lines into domain.Record values.
//
// Grammar
//
//	token(-token)*-sectorid[checksum]
//
// Tokens are not checked for letters here; a token with stray characters
// simply fails checksum validation later, as does a stored checksum that is
// not five letters long. Only the sector id must be an integer.
//
// # Errors
//
// Every failure is a *domain.ParseError whose Unwrap yields
// domain.ErrMalformedIdentifier or domain.ErrMalformedSector.
package parse
