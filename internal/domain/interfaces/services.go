package interfaces

import types "roomkey/internal/domain/types"

// CatalogService answers read-only queries over a loaded set of room records.
type CatalogService interface {
	Len() int
	Fingerprint() types.Fingerprint
	SumValidSectors() int
	FindSector(target string) (int, error)
	Rooms() []types.ValidatedRecord
}
