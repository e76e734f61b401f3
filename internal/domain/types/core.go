package types

// ChecksumLen is the number of letters in a stored room checksum.
const ChecksumLen = 5

// Checksum is the five-letter digest embedded in a room identifier.
type Checksum string

// String returns the string form of the checksum.
func (c Checksum) String() string { return string(c) }

// Fingerprint is a short digest of an input blob presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
