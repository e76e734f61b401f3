package catalog

import (
	"fmt"
	"strings"

	"roomkey/internal/crypto"
	"roomkey/internal/domain"
	"roomkey/internal/parse"
)

// Catalog is an immutable, ordered set of room records.
type Catalog struct {
	records []domain.Record
	fp      domain.Fingerprint
}

// Load parses lines into a Catalog, aborting on the first malformed line.
func Load(lines []string) (*Catalog, error) {
	records, err := parse.Lines(lines)
	if err != nil {
		return nil, err
	}
	return &Catalog{records: records}, nil
}

// Len returns the number of records, valid or not.
func (c *Catalog) Len() int { return len(c.records) }

// Fingerprint returns the digest of the input the catalog was loaded from,
// or "" when it was built from lines directly.
func (c *Catalog) Fingerprint() domain.Fingerprint { return c.fp }

// SumValidSectors adds up the sector ids of all valid records.
func (c *Catalog) SumValidSectors() int {
	total := 0
	for _, rec := range c.records {
		if crypto.Valid(rec) {
			total += rec.Sector
		}
	}
	return total
}

// FindSector returns the sector id of the first valid record whose decrypted
// name contains target.
func (c *Catalog) FindSector(target string) (int, error) {
	for _, rec := range c.records {
		if !crypto.Valid(rec) {
			continue
		}
		if strings.Contains(crypto.Rotate(rec.Tokens, rec.Sector), target) {
			return rec.Sector, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrNotFound, target)
}

// Rooms returns every record in input order with its validity. Only valid
// records carry a decrypted Name.
func (c *Catalog) Rooms() []domain.ValidatedRecord {
	out := make([]domain.ValidatedRecord, len(c.records))
	for i, rec := range c.records {
		out[i] = domain.ValidatedRecord{Record: rec, Valid: crypto.Valid(rec)}
		if out[i].Valid {
			out[i].Name = crypto.Rotate(rec.Tokens, rec.Sector)
		}
	}
	return out
}

func (c *Catalog) validCount() int {
	n := 0
	for _, rec := range c.records {
		if crypto.Valid(rec) {
			n++
		}
	}
	return n
}

// Compile-time assertion that Catalog implements domain.CatalogService.
var _ domain.CatalogService = (*Catalog)(nil)
