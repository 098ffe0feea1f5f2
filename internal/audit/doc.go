// Package audit provides an audit trail for key store operations.
//
// Every operation that creates, reveals, or uses a key (generate-key,
// import-key, export-key, batch-gen, send) is recorded in a log kept next
// to the key store. Entries name keys and operations. They never contain
// passwords, mnemonics, or secret key material.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	<store directory>/audit.jsonl
//
// unless the audit_log config key points elsewhere. Each entry contains:
//   - A unique entry ID (UUID)
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Local user and host
//   - Operation name
//   - Operation-specific details (key names, counts, endpoint)
//
// # Usage
//
//	entry := audit.LogWithUser("generate-key")
//	entry.KeyName = name
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display. Malformed entries
// are silently skipped to handle partial writes.
package audit
