package workflows

import (
	"context"

	"github.com/PolarWolf314/soundness/internal/keystore"
)

// ListKeysOptions configures the list-keys workflow.
type ListKeysOptions struct {
	// Store is the key store to read from.
	Store *keystore.Repository
}

// KeyInfo describes one stored key pair.
type KeyInfo struct {
	Name      string
	PublicKey string
	HasSecret bool
}

// ListKeysResult contains the outcome of a list-keys operation.
type ListKeysResult struct {
	// Keys are sorted by name.
	Keys []KeyInfo
}

// ListKeys returns every key pair in the store.
func ListKeys(ctx context.Context, opts ListKeysOptions) (*ListKeysResult, error) {
	store, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}

	result := &ListKeysResult{}
	for _, name := range store.Names() {
		pair := store.Keys[name]
		result.Keys = append(result.Keys, KeyInfo{
			Name:      name,
			PublicKey: pair.PublicKeyString,
			HasSecret: pair.HasSecret(),
		})
	}
	return result, nil
}
