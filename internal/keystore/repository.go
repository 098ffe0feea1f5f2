package keystore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
)

// DefaultPath is the store file used when nothing else is configured.
const DefaultPath = "key_store.json"

// Repository loads and saves a KeyStore at a fixed path.
type Repository struct {
	path string
}

// New returns a repository for the store file at path.
func New(path string) *Repository {
	if path == "" {
		path = DefaultPath
	}
	return &Repository{path: path}
}

// Path returns the store file location.
func (r *Repository) Path() string {
	return r.path
}

// Load reads the store file. A missing file yields an empty store; a file
// that is not a valid store yields ErrStoreCorrupt.
func (r *Repository) Load() (*KeyStore, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewKeyStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key store at %s: %w", r.path, err)
	}

	var store KeyStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrStoreCorrupt, r.path, err)
	}
	if store.Keys == nil {
		return nil, fmt.Errorf("%w: %s: missing \"keys\" object", kerrors.ErrStoreCorrupt, r.path)
	}
	return &store, nil
}

// Save writes the whole store, replacing any existing file.
func (r *Repository) Save(store *KeyStore) error {
	if store.Keys == nil {
		store.Keys = make(map[string]KeyPair)
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key store: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write key store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace key store at %s: %w", r.path, err)
	}
	return nil
}

// Snapshot loads the store together with its fingerprint.
func (r *Repository) Snapshot() (*KeyStore, string, error) {
	store, err := r.Load()
	if err != nil {
		return nil, "", err
	}
	fp, err := Fingerprint(store)
	if err != nil {
		return nil, "", err
	}
	return store, fp, nil
}

// Fingerprint returns the hex SHA-256 of the store's canonical encoding.
func Fingerprint(store *KeyStore) (string, error) {
	canonical := store
	if store.Keys == nil {
		canonical = NewKeyStore()
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("failed to encode key store: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
