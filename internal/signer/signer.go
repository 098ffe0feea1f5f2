package signer

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/keystore"
	"github.com/PolarWolf314/soundness/internal/secrets"
	"github.com/PolarWolf314/soundness/internal/session"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/awnumar/memguard"
)

// maxSignAttempts bounds how often Sign restarts after a stale password.
const maxSignAttempts = 2

// PasswordPrompt is shown when the session cache has no usable password.
const PasswordPrompt = "Enter password to decrypt the secret key: "

// staleError marks an attempt that may succeed after invalidating the cache.
type staleError struct {
	err error
}

func (e *staleError) Error() string { return e.err.Error() }
func (e *staleError) Unwrap() error { return e.err }

// Signer signs payloads with named keys from a key store.
type Signer struct {
	Store  *keystore.Repository
	Cache  *session.Cache
	Prompt utils.Prompter
}

// New returns a Signer. A nil cache gets a private one.
func New(store *keystore.Repository, cache *session.Cache, prompt utils.Prompter) *Signer {
	if cache == nil {
		cache = session.New()
	}
	return &Signer{Store: store, Cache: cache, Prompt: prompt}
}

// Sign returns the Ed25519 signature of payload made with the key called keyName.
//
// Returns ErrKeyNotFound if no such key exists.
// Returns ErrSecretNotStored if the key has no encrypted secret.
// Returns ErrAuthentication if the password does not open the secret.
// Returns ErrStoreChanged if the store kept changing across the retry.
func (s *Signer) Sign(ctx context.Context, payload []byte, keyName string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxSignAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sig, err := s.attempt(payload, keyName)
		if err == nil {
			return sig, nil
		}

		var stale *staleError
		if !errors.As(err, &stale) {
			return nil, err
		}
		s.Cache.Invalidate()
		lastErr = stale.err
	}
	return nil, lastErr
}

// PublicKey returns the raw public key of the key called keyName.
func (s *Signer) PublicKey(keyName string) ([]byte, error) {
	store, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	pair, err := store.Get(keyName)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), pair.PublicKey...), nil
}

func (s *Signer) attempt(payload []byte, keyName string) ([]byte, error) {
	store, fingerprint, err := s.Store.Snapshot()
	if err != nil {
		return nil, err
	}

	pair, err := store.Get(keyName)
	if err != nil {
		return nil, err
	}
	if !pair.HasSecret() {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrSecretNotStored, keyName)
	}

	// verify keeps the seed it decrypted so a fresh password is not
	// run through the KDF twice.
	var seed []byte
	verify := func(password string) error {
		out, err := secrets.DecryptSecret(pair.EncryptedSecret, password)
		if err != nil {
			return err
		}
		seed = out
		return nil
	}
	prompt := func() (string, error) {
		return s.Prompt.ReadPassword(PasswordPrompt)
	}

	password, err := s.Cache.GetOrPrompt(fingerprint, prompt, verify)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		seed, err = secrets.DecryptSecret(pair.EncryptedSecret, password)
		if err != nil {
			return nil, &staleError{err: fmt.Errorf("cached password rejected for %s: %w", keyName, err)}
		}
	}
	defer memguard.WipeBytes(seed)

	_, current, err := s.Store.Snapshot()
	if err != nil {
		return nil, err
	}
	if current != fingerprint {
		return nil, &staleError{err: fmt.Errorf("%w: %s", kerrors.ErrStoreChanged, s.Store.Path())}
	}

	priv, err := secrets.SigningKeyFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrStoreCorrupt, err)
	}
	defer memguard.WipeBytes(priv)

	if !bytes.Equal(secrets.PublicKeyOf(priv), pair.PublicKey) {
		return nil, fmt.Errorf("%w: public key of %s does not match its secret key", kerrors.ErrStoreCorrupt, keyName)
	}

	return ed25519.Sign(priv, payload), nil
}
