package memory

import (
	"crypto/rand"
	"encoding/hex"
)

// IDLength is the length of every store identifier: 16 random bytes hex-encoded.
const IDLength = 32

// NewID returns a fresh 32-character lowercase-hex identifier with 128 bits
// of entropy. Collisions within a live namespace are cryptographically
// negligible, so no retry loop is needed.
func NewID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process has no usable entropy source
		panic(err)
	}
	return hex.EncodeToString(b)
}

// IsValidID reports whether id is a well-formed store identifier. Malformed
// ids are rejected at the boundary and never reach a cache lookup.
func IsValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
