package session

import (
	"errors"
	"fmt"
	"sync"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/awnumar/memguard"
)

// PromptFunc asks the user for a candidate password.
type PromptFunc func() (string, error)

// VerifyFunc checks that a candidate password opens the secret it is meant for.
type VerifyFunc func(password string) error

// entry keeps the password in a locked, guarded memory region that is
// destroyed when the entry is dropped.
type entry struct {
	password    *memguard.LockedBuffer
	fingerprint string
}

// Cache holds at most one verified password together with the store
// fingerprint it was verified against.
type Cache struct {
	mu    sync.Mutex
	entry *entry
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// GetOrPrompt returns the cached password when it was verified against
// fingerprint. Otherwise it drops any stale entry, prompts, verifies the
// candidate, and caches it. A candidate that fails verification is never
// cached and yields ErrAuthentication.
func (c *Cache) GetOrPrompt(fingerprint string, prompt PromptFunc, verify VerifyFunc) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry != nil {
		if c.entry.fingerprint == fingerprint {
			return string(c.entry.password.Bytes()), nil
		}
		c.dropLocked()
	}

	candidate, err := prompt()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if err := verify(candidate); err != nil {
		if errors.Is(err, kerrors.ErrAuthentication) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", kerrors.ErrAuthentication, err)
	}

	// NewBufferFromBytes copies into locked memory, wipes the source and
	// leaves the buffer read-only.
	c.entry = &entry{password: memguard.NewBufferFromBytes([]byte(candidate)), fingerprint: fingerprint}
	return candidate, nil
}

// Invalidate drops the cached password, if any.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropLocked()
}

// Clear destroys the cached password. Call it before the process exits.
func (c *Cache) Clear() {
	c.Invalidate()
}

func (c *Cache) dropLocked() {
	if c.entry == nil {
		return
	}
	c.entry.password.Destroy()
	c.entry = nil
}
