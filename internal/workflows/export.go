package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/audit"
	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/keystore"
	"github.com/PolarWolf314/soundness/internal/secrets"
	"github.com/PolarWolf314/soundness/internal/signer"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/awnumar/memguard"
)

// ExportKeyOptions configures the export-key workflow.
type ExportKeyOptions struct {
	// Store is the key store to read from.
	Store *keystore.Repository

	// Name is the key pair to export.
	Name string

	// Prompt reads the password.
	Prompt utils.Prompter
}

// ExportKeyResult contains the outcome of an export-key operation.
type ExportKeyResult struct {
	// Name is the exported key pair.
	Name string

	// Mnemonic is the recovery phrase of the secret key.
	Mnemonic string
}

// ExportKey decrypts a stored secret key and returns its mnemonic.
//
// Returns ErrKeyNotFound if no key pair with that name exists.
// Returns ErrSecretNotStored if the key pair has no secret key.
// Returns ErrAuthentication if the password is wrong.
func ExportKey(ctx context.Context, opts ExportKeyOptions) (*ExportKeyResult, error) {
	store, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}
	pair, err := store.Get(opts.Name)
	if err != nil {
		return nil, err
	}
	if !pair.HasSecret() {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrSecretNotStored, opts.Name)
	}

	password, err := opts.Prompt.ReadPassword(signer.PasswordPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	seed, err := secrets.DecryptSecret(pair.EncryptedSecret, password)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(seed)

	mnemonic, err := secrets.EntropyToMnemonic(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrStoreCorrupt, err)
	}

	entry := audit.LogWithUser(audit.OpExport)
	entry.KeyName = opts.Name
	audit.Log(entry)

	return &ExportKeyResult{Name: opts.Name, Mnemonic: mnemonic}, nil
}
