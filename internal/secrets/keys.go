package secrets

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SeedLength is the size of an Ed25519 secret key seed in bytes.
const SeedLength = ed25519.SeedSize

// GenerateSigningKey creates a new random Ed25519 key pair.
func GenerateSigningKey() (ed25519.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return priv, nil
}

// SigningKeyFromSeed rebuilds the Ed25519 key pair for a 32-byte seed.
func SigningKeyFromSeed(seed []byte) (ed25519.PrivateKey, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("invalid secret key length: expected %d bytes, got %d bytes", SeedLength, len(seed))
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// PublicKeyOf returns the public half of priv.
func PublicKeyOf(priv ed25519.PrivateKey) ed25519.PublicKey {
	return priv.Public().(ed25519.PublicKey)
}

// EncodePublicKey returns the canonical text form of a public key.
func EncodePublicKey(pub []byte) string {
	return base64.StdEncoding.EncodeToString(pub)
}

// Verify reports whether sig is a valid signature of message by pub.
func Verify(pub, message, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig)
}
