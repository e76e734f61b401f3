package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"roomkey/internal/domain"
)

// Fingerprint returns a short hex fingerprint of an input blob.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(blob []byte) domain.Fingerprint {
	sum := blake2b.Sum256(blob)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
