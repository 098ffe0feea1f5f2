package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/audit"
	"github.com/PolarWolf314/soundness/internal/keystore"
	"github.com/PolarWolf314/soundness/internal/secrets"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/awnumar/memguard"
)

// GenerateKeyOptions configures the generate-key workflow.
type GenerateKeyOptions struct {
	// Store is the key store the new pair is added to.
	Store *keystore.Repository

	// Name is the name of the new key pair.
	Name string

	// Prompt reads the password and its confirmation.
	Prompt utils.Prompter

	// ShowMnemonic receives the recovery phrase before the password is
	// requested. It is called exactly once.
	ShowMnemonic func(mnemonic string)
}

// GenerateKeyResult contains the outcome of a generate-key operation.
type GenerateKeyResult struct {
	// Name is the name of the stored key pair.
	Name string

	// PublicKey is the base64 encoded public key.
	PublicKey string
}

// GenerateKey creates a new Ed25519 key pair, shows its mnemonic, and stores
// it encrypted under a password chosen by the user.
//
// Returns ErrInvalidKeyName if the name is blank or malformed.
// Returns ErrNameCollision if a key pair with that name exists.
// Returns ErrPasswordMismatch if the confirmation differs.
func GenerateKey(ctx context.Context, opts GenerateKeyOptions) (*GenerateKeyResult, error) {
	store, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}
	if err := checkNewName(store, opts.Name); err != nil {
		return nil, err
	}

	priv, err := secrets.GenerateSigningKey()
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(priv)

	mnemonic, err := secrets.EntropyToMnemonic(priv.Seed())
	if err != nil {
		return nil, fmt.Errorf("failed to encode mnemonic: %w", err)
	}
	if opts.ShowMnemonic != nil {
		opts.ShowMnemonic(mnemonic)
	}

	password, err := readNewPassword(opts.Prompt)
	if err != nil {
		return nil, err
	}

	pair, err := sealKeyPair(priv, password)
	if err != nil {
		return nil, err
	}
	if err := store.Add(opts.Name, pair); err != nil {
		return nil, err
	}
	if err := opts.Store.Save(store); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpGenerate)
	entry.KeyName = opts.Name
	audit.Log(entry)

	return &GenerateKeyResult{Name: opts.Name, PublicKey: pair.PublicKeyString}, nil
}
