package domain

import (
	interfaces "roomkey/internal/domain/interfaces"
	types "roomkey/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Checksum        = types.Checksum
	Fingerprint     = types.Fingerprint
	Record          = types.Record
	ValidatedRecord = types.ValidatedRecord
)

// ChecksumLen is the number of letters in a stored room checksum.
const ChecksumLen = types.ChecksumLen

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CatalogService = interfaces.CatalogService
	InputSource    = interfaces.InputSource
)
