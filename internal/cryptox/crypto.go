// Package cryptox implements the salted-digest scheme used by the vault
// store. A password is never persisted: only its SHA-256 digest over
// password‖salt, with a per-record random salt.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/dmitrijs2005/passvault/internal/randx"
)

// SaltSize is the number of random bytes in a salt. Rendered as hex the salt
// is twice this length.
const SaltSize = 16

// NewSalt returns a fresh random salt as a fixed-width hex string.
// The salt is stored next to the hash and is not secret: it only prevents
// precomputed dictionary collisions across records.
func NewSalt() (string, error) {
	return randx.Hex(SaltSize)
}

// HashPassword computes the hex-encoded SHA-256 digest of password‖salt.
// The concatenation order is part of the stored format and must not change.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// DigestsEqual compares two hex digests in constant time.
func DigestsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
