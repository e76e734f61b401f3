package types

import (
	"strconv"
	"strings"
)

// Record is one parsed room identifier, e.g. "not-a-real-room-404[oarel]".
//
// Records are built once by the parser and never mutated afterwards.
type Record struct {
	Tokens   []string `json:"tokens"`
	Sector   int      `json:"sector"`
	Checksum Checksum `json:"checksum"`
}

// String renders the record back into identifier form.
func (r Record) String() string {
	var b strings.Builder
	for _, t := range r.Tokens {
		b.WriteString(t)
		b.WriteByte('-')
	}
	b.WriteString(strconv.Itoa(r.Sector))
	b.WriteByte('[')
	b.WriteString(r.Checksum.String())
	b.WriteByte(']')
	return b.String()
}

// ValidatedRecord pairs a Record with the outcome of checksum validation.
// Name holds the decrypted room name and is only set for valid records.
type ValidatedRecord struct {
	Record
	Valid bool   `json:"valid"`
	Name  string `json:"name,omitempty"`
}
