// Package configs manages the user configuration for soundness.
//
// Configuration is stored in TOML format at:
//
//	$XDG_CONFIG_HOME/soundness/config.toml
//
// # Keys
//
// The config file may set:
//   - store_path: location of the key store (default key_store.json)
//   - public_keys_path: batch-gen artifact (default public_keys.txt)
//   - endpoint: base URL proofs are sent to (default http://localhost:3000)
//   - audit_log: audit trail file (default audit.jsonl next to the store)
//   - request_timeout: HTTP timeout such as "30s"
//
// # Precedence
//
// Values are resolved in this order, later sources winning:
//
//  1. Built-in defaults
//  2. The config file
//  3. SOUNDNESS_KEY_STORE and SOUNDNESS_ENDPOINT environment variables
//  4. Command-line flags (applied by the cmd package)
//
// A missing config file is not an error. The resolved settings are kept in
// Active so other packages, such as audit, can find the store location.
package configs
