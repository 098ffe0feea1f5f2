package workflows

import (
	"crypto/ed25519"
	"fmt"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/keystore"
	"github.com/PolarWolf314/soundness/internal/secrets"
	"github.com/PolarWolf314/soundness/internal/utils"
)

// Password prompts shown while protecting a new secret key.
const (
	NewPasswordPrompt     = "Enter password for secret key: "
	ConfirmPasswordPrompt = "Confirm password: "
)

// sealKeyPair encrypts priv's seed under password and returns the store record.
func sealKeyPair(priv ed25519.PrivateKey, password string) (keystore.KeyPair, error) {
	pub := secrets.PublicKeyOf(priv)
	env, err := secrets.EncryptSecret(priv.Seed(), password)
	if err != nil {
		return keystore.KeyPair{}, err
	}
	return keystore.KeyPair{
		PublicKey:       secrets.Bytes(pub),
		PublicKeyString: secrets.EncodePublicKey(pub),
		EncryptedSecret: env,
	}, nil
}

// readNewPassword asks for a password twice.
func readNewPassword(prompt utils.Prompter) (string, error) {
	password, err := prompt.ReadPassword(NewPasswordPrompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := prompt.ReadPassword(ConfirmPasswordPrompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return "", kerrors.ErrPasswordMismatch
	}
	return password, nil
}

// checkNewName validates name and ensures the store does not hold it yet.
func checkNewName(store *keystore.KeyStore, name string) error {
	if !utils.IsValidKeyName(name) {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidKeyName, name)
	}
	if store.Has(name) {
		return fmt.Errorf("%w: %s", kerrors.ErrNameCollision, name)
	}
	return nil
}
