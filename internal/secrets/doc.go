// Package secrets provides the cryptographic primitives of the key vault.
//
// This package handles password-based key derivation, authenticated
// encryption of secret keys, Ed25519 key material, and the BIP-39 mnemonic
// codec used for offline backups.
//
// # Encryption Architecture
//
// Each secret key is protected by its own envelope:
//
//  1. A random 32-byte salt is fed with the password into PBKDF2-HMAC-SHA256
//     (100,000 iterations) to derive a 256-bit key
//  2. The secret key is sealed with AES-256-GCM under a random 12-byte nonce
//  3. Salt, nonce, and ciphertext are stored together as an EncryptedSecret
//
// Salt and nonce are drawn fresh for every encryption, so a derived key is
// never used twice with the same nonce. Decryption with the wrong password,
// or of a modified envelope, fails the GCM tag check and returns
// ErrAuthentication; there is no separate password verifier.
//
// # Key Material
//
// Signing keys are Ed25519. The 32-byte seed is the secret that gets
// encrypted and that the mnemonic encodes (24 words). The public key is
// always rederived from the seed.
//
// # Security Considerations
//
// Batch-generated keys are encrypted with the empty password and offer no
// confidentiality at rest. Callers should wipe decrypted seeds with
// memguard.WipeBytes as soon as they are done with them.
package secrets
