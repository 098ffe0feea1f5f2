package secrets

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFIterations is the PBKDF2 work factor. It keeps an interactive unlock
	// well under a second while making offline guessing expensive.
	KDFIterations = 100_000

	// KeyLength is the size of derived keys in bytes (AES-256).
	KeyLength = 32

	// SaltLength is the size of the random per-envelope salt in bytes.
	SaltLength = 32
)

// DeriveKey turns a password and salt into a 32-byte symmetric key.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, KDFIterations, KeyLength, sha256.New)
}
