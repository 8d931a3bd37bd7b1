// Package cryptox implements password hashing for the credential store.
//
// Each user record stores a random per-record salt next to a fixed-length
// hex digest. The digest chain is Argon2id over (password, salt) followed
// by SHA-256, so the stored value is memory-hard to brute-force while
// remaining a plain 64-character hex string.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes generated per user record.
const SaltSize = 32

// DeriveKey derives a 32-byte key from the password and salt using Argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword returns the hex digest stored in a user record for the given
// password and salt.
func HashPassword(password []byte, salt []byte) string {
	sum := sha256.Sum256(DeriveKey(password, salt))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password matches the stored salt/digest
// pair. The comparison is constant-time. Malformed stored values never
// match.
func VerifyPassword(password []byte, saltHex string, digestHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}
	sum := sha256.Sum256(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(digest, sum[:]) == 1
}
