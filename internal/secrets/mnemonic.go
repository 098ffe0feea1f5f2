package secrets

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"

	"github.com/awnumar/memguard"
	"github.com/tyler-smith/go-bip39"
)

// EntropyToMnemonic encodes raw entropy as a BIP-39 English word list.
// A 32-byte seed produces 24 words.
func EntropyToMnemonic(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// MnemonicToEntropy decodes a BIP-39 phrase back into its entropy. Extra
// whitespace and letter case are ignored; an unknown word or bad checksum
// returns ErrInvalidMnemonic.
func MnemonicToEntropy(words string) ([]byte, error) {
	normalized := NormalizeMnemonic(words)
	if normalized == "" {
		return nil, fmt.Errorf("%w: phrase is empty", kerrors.ErrInvalidMnemonic)
	}
	entropy, err := bip39.EntropyFromMnemonic(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidMnemonic, err)
	}
	return entropy, nil
}

// SeedFromMnemonic decodes a phrase that must carry exactly one Ed25519 seed.
func SeedFromMnemonic(words string) ([]byte, error) {
	entropy, err := MnemonicToEntropy(words)
	if err != nil {
		return nil, err
	}
	if len(entropy) != SeedLength {
		memguard.WipeBytes(entropy)
		return nil, fmt.Errorf("%w: expected %d words, got %d", kerrors.ErrInvalidMnemonic, 24, len(strings.Fields(words)))
	}
	return entropy, nil
}

// NormalizeMnemonic lowercases the phrase and collapses runs of whitespace.
func NormalizeMnemonic(words string) string {
	return strings.Join(strings.Fields(strings.ToLower(words)), " ")
}
