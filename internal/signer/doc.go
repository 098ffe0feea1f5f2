// Package signer signs payloads with keys held in the encrypted key store.
//
// Signing resolves the key by name, obtains the store password through the
// session cache (prompting when nothing valid is cached), decrypts the
// Ed25519 seed, and produces a deterministic Ed25519 signature.
//
// # Retry Bound
//
// Two situations make a password stale mid-call:
//
//   - a cached password that does not open this key's envelope (keys in one
//     store may use different passwords)
//   - the store file changing on disk while the user was being prompted
//
// Either one invalidates the cache and restarts from a fresh load of the
// store. This happens at most once per Sign call; a second stale attempt is
// returned as an error. Signing is all-or-nothing: no signature is returned
// unless every step succeeded.
package signer
