// Package errors provides typed error values for the soundness CLI.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key store errors: naming and lookup issues (ErrNameCollision, ErrKeyNotFound)
//   - Crypto errors: encryption/decryption failures (ErrAuthentication, ErrEncryption)
//   - Input errors: bad interactive input (ErrPasswordMismatch, ErrInvalidMnemonic)
//   - Submission errors: problems talking to the proof endpoint
//
// # Usage
//
// Return errors from internal packages:
//
//	if _, exists := store.Keys[name]; exists {
//	    return nil, errors.ErrNameCollision
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.ExportKey(ctx, opts)
//	if errors.Is(err, kerrors.ErrAuthentication) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading key %s: %w", name, errors.ErrKeyNotFound)
package errors
