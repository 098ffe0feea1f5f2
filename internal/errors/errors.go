package errors

import "errors"

// Key store errors indicate problems with the names or contents of the key store.
var (
	// ErrNameCollision indicates a key pair with the requested name already exists.
	ErrNameCollision = errors.New("key pair name already exists")

	// ErrKeyNotFound indicates no key pair with the requested name exists.
	ErrKeyNotFound = errors.New("key pair not found")

	// ErrSecretNotStored indicates the key pair has no encrypted secret key.
	ErrSecretNotStored = errors.New("secret key not stored for key pair")

	// ErrStoreCorrupt indicates the key store file exists but cannot be parsed.
	ErrStoreCorrupt = errors.New("key store is corrupt")

	// ErrStoreChanged indicates the key store kept changing while a key was being used.
	ErrStoreChanged = errors.New("key store changed during operation")

	// ErrInvalidKeyName indicates the key pair name is empty or malformed.
	ErrInvalidKeyName = errors.New("invalid key pair name")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrAuthentication indicates the password is wrong or the ciphertext was tampered with.
	ErrAuthentication = errors.New("invalid password or corrupted secret key")

	// ErrEncryption indicates the underlying cipher failed while encrypting.
	ErrEncryption = errors.New("failed to encrypt secret key")
)

// Input errors indicate problems with values supplied interactively.
var (
	// ErrPasswordMismatch indicates the password confirmation did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidMnemonic indicates the mnemonic phrase could not be decoded into a secret key.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")
)

// Submission errors indicate issues with sending signed proofs.
var (
	// ErrInvalidProvingSystem indicates an unknown proving system identifier.
	ErrInvalidProvingSystem = errors.New("invalid proving system")

	// ErrSubmissionRejected indicates the endpoint answered with a non-success status.
	ErrSubmissionRejected = errors.New("submission rejected by server")
)

// Audit log errors indicate problems reading the audit trail.
var (
	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
