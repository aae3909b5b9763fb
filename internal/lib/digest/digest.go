// Package digest implements the password check used by the team endpoints.
//
// The stored credential is the hex encoding of an unsalted sha256 of the
// plaintext. Identical passwords produce identical digests, so this scheme is
// unsuitable for new systems; it is kept because the stored users table
// already holds digests in this form.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex-encoded sha256 digest of plaintext.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether plaintext hashes to storedHex.
func Verify(plaintext, storedHex string) bool {
	return Hash(plaintext) == storedHex
}
