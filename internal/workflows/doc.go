// Package workflows provides high-level orchestration for soundness commands.
//
// Workflows coordinate the key store, the secrets primitives, the signer,
// and the audit trail to implement complete user-facing features. Each
// workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading and saving the key store
//   - Prompting through the injected Prompter
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - GenerateKey: Creates a password-protected key pair and reveals its mnemonic once
//   - BatchGenerate: Creates many password-less key pairs for bulk registration
//   - ImportKey: Recreates a key pair from its mnemonic
//   - ExportKey: Reveals the mnemonic of a stored key pair
//   - ListKeys: Lists stored key pairs
//   - Send: Signs a proof submission and posts it to the endpoint
//   - Log: Reads and filters the audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.ExportKey(ctx, opts)
//	if errors.Is(err, kerrors.ErrAuthentication) {
//	    // Tell the user the password was wrong
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
package workflows
