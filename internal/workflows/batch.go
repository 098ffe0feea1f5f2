package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/soundness/internal/audit"
	"github.com/PolarWolf314/soundness/internal/configs"
	"github.com/PolarWolf314/soundness/internal/keystore"
	"github.com/PolarWolf314/soundness/internal/secrets"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/awnumar/memguard"
)

// BatchKeyPrefix prefixes the names of batch generated key pairs.
const BatchKeyPrefix = "batch_key_"

// batchPassword protects batch generated secrets. Anyone with the store
// file can decrypt them.
const batchPassword = ""

// BatchGenerateOptions configures the batch-gen workflow.
type BatchGenerateOptions struct {
	// Store is the key store the new pairs are added to.
	Store *keystore.Repository

	// Count is how many key pairs to create. Zero does nothing.
	Count int

	// OutputPath receives the public keys, one per line.
	// Defaults to public_keys.txt.
	OutputPath string

	// Progress, if set, is called after each key pair is created.
	Progress func(done, total int)
}

// BatchGenerateResult contains the outcome of a batch-gen operation.
type BatchGenerateResult struct {
	// Names are the new key pair names in generation order.
	Names []string

	// PublicKeys are the base64 public keys in generation order.
	PublicKeys []string

	// OutputPath is where the public keys were written. Empty if nothing
	// was generated.
	OutputPath string
}

// BatchGenerate creates Count key pairs named batch_key_<n>, using the
// lowest free indices, with secrets encrypted under an empty password. The
// store is written once, then the public keys are written to OutputPath.
func BatchGenerate(ctx context.Context, opts BatchGenerateOptions) (*BatchGenerateResult, error) {
	result := &BatchGenerateResult{}
	if opts.Count <= 0 {
		return result, nil
	}

	store, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}

	next := 0
	for i := 0; i < opts.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, n := utils.NextFreeName(BatchKeyPrefix, next, store.Has)
		next = n + 1

		priv, err := secrets.GenerateSigningKey()
		if err != nil {
			return nil, err
		}
		pair, err := sealKeyPair(priv, batchPassword)
		memguard.WipeBytes(priv)
		if err != nil {
			return nil, err
		}
		if err := store.Add(name, pair); err != nil {
			return nil, err
		}

		result.Names = append(result.Names, name)
		result.PublicKeys = append(result.PublicKeys, pair.PublicKeyString)
		if opts.Progress != nil {
			opts.Progress(i+1, opts.Count)
		}
	}

	if err := opts.Store.Save(store); err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = configs.DefaultPublicKeysPath
	}
	if err := writePublicKeys(outputPath, result.PublicKeys); err != nil {
		return nil, err
	}
	result.OutputPath = outputPath

	entry := audit.LogWithUser(audit.OpBatchGen)
	entry.KeyNames = result.Names
	entry.OutputPath = outputPath
	audit.Log(entry)

	return result, nil
}

func writePublicKeys(path string, keys []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	content := strings.Join(keys, "\n") + "\n"
	// #nosec G306 -- the file only holds public keys.
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write public keys to %s: %w", path, err)
	}
	return nil
}
