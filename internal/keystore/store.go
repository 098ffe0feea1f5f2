package keystore

import (
	"fmt"
	"sort"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/secrets"
)

// KeyPair is one named signing identity.
type KeyPair struct {
	PublicKey       secrets.Bytes            `json:"public_key"`
	PublicKeyString string                   `json:"public_key_string"`
	EncryptedSecret *secrets.EncryptedSecret `json:"encrypted_secret_key,omitempty"`
}

// HasSecret reports whether the pair carries an encrypted secret key.
func (k KeyPair) HasSecret() bool {
	return k.EncryptedSecret != nil
}

// KeyStore maps unique names to key pairs.
type KeyStore struct {
	Keys map[string]KeyPair `json:"keys"`
}

// NewKeyStore returns an empty store.
func NewKeyStore() *KeyStore {
	return &KeyStore{Keys: make(map[string]KeyPair)}
}

// Has reports whether a key pair called name exists.
func (s *KeyStore) Has(name string) bool {
	_, ok := s.Keys[name]
	return ok
}

// Get returns the key pair called name or ErrKeyNotFound.
func (s *KeyStore) Get(name string) (KeyPair, error) {
	pair, ok := s.Keys[name]
	if !ok {
		return KeyPair{}, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, name)
	}
	return pair, nil
}

// Add inserts a new key pair. Existing entries are never replaced.
func (s *KeyStore) Add(name string, pair KeyPair) error {
	if s.Keys == nil {
		s.Keys = make(map[string]KeyPair)
	}
	if s.Has(name) {
		return fmt.Errorf("%w: %s", kerrors.ErrNameCollision, name)
	}
	s.Keys[name] = pair
	return nil
}

// Names returns all key pair names in sorted order.
func (s *KeyStore) Names() []string {
	names := make([]string, 0, len(s.Keys))
	for name := range s.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
