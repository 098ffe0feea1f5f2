package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/awnumar/memguard"
)

// NonceLength is the AES-GCM nonce size in bytes.
const NonceLength = 12

// EncryptedSecret is the envelope protecting one secret key at rest.
type EncryptedSecret struct {
	Salt          Bytes `json:"salt"`
	Nonce         Bytes `json:"nonce"`
	EncryptedData Bytes `json:"encrypted_data"`
}

// EncryptSecret seals secret under a key derived from password with a fresh
// random salt and nonce.
func EncryptSecret(secret []byte, password string) (*EncryptedSecret, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: reading salt: %v", kerrors.ErrEncryption, err)
	}
	nonce := make([]byte, NonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: reading nonce: %v", kerrors.ErrEncryption, err)
	}

	key := DeriveKey([]byte(password), salt)
	defer memguard.WipeBytes(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEncryption, err)
	}

	return &EncryptedSecret{
		Salt:          salt,
		Nonce:         nonce,
		EncryptedData: aead.Seal(nil, nonce, secret, nil),
	}, nil
}

// DecryptSecret opens env with a key derived from password. Any failure,
// including a wrong password or a tampered envelope, returns ErrAuthentication.
func DecryptSecret(env *EncryptedSecret, password string) ([]byte, error) {
	if env == nil {
		return nil, kerrors.ErrSecretNotStored
	}
	if len(env.Nonce) != NonceLength {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", kerrors.ErrAuthentication, NonceLength, len(env.Nonce))
	}

	key := DeriveKey([]byte(password), env.Salt)
	defer memguard.WipeBytes(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrAuthentication, err)
	}

	plaintext, err := aead.Open(nil, env.Nonce, env.EncryptedData, nil)
	if err != nil {
		return nil, kerrors.ErrAuthentication
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
