package workflows

import (
	"context"

	"github.com/PolarWolf314/soundness/internal/audit"
	"github.com/PolarWolf314/soundness/internal/keystore"
	"github.com/PolarWolf314/soundness/internal/secrets"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/awnumar/memguard"
)

// MnemonicPrompt asks for the recovery phrase during import.
const MnemonicPrompt = "Enter your mnemonic phrase (24 words): "

// ImportKeyOptions configures the import-key workflow.
type ImportKeyOptions struct {
	// Store is the key store the imported pair is added to.
	Store *keystore.Repository

	// Name is the name of the imported key pair.
	Name string

	// Prompt reads the mnemonic, the password, and its confirmation.
	Prompt utils.Prompter
}

// ImportKeyResult contains the outcome of an import-key operation.
type ImportKeyResult struct {
	// Name is the name of the stored key pair.
	Name string

	// PublicKey is the base64 encoded public key.
	PublicKey string
}

// ImportKey recreates a key pair from its mnemonic and stores it encrypted
// under a new password.
//
// Returns ErrNameCollision if a key pair with that name exists.
// Returns ErrInvalidMnemonic if the phrase does not decode to a 32-byte seed.
// Returns ErrPasswordMismatch if the confirmation differs.
func ImportKey(ctx context.Context, opts ImportKeyOptions) (*ImportKeyResult, error) {
	store, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}
	if err := checkNewName(store, opts.Name); err != nil {
		return nil, err
	}

	words, err := opts.Prompt.ReadLine(MnemonicPrompt)
	if err != nil {
		return nil, err
	}
	seed, err := secrets.SeedFromMnemonic(words)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(seed)

	priv, err := secrets.SigningKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(priv)

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

	entry := audit.LogWithUser(audit.OpImport)
	entry.KeyName = opts.Name
	audit.Log(entry)

	return &ImportKeyResult{Name: opts.Name, PublicKey: pair.PublicKeyString}, nil
}
