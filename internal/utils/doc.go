// Package utils provides shared utility functions for the soundness CLI.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # Filesystem Utilities
//
//   - ExpandPath: expands a leading ~ to the user's home directory
//   - FileBaseName: returns a file's base name or "unknown"
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//
// # String Utilities
//
//   - IsValidKeyName: checks that a key pair name is usable
//   - NextFreeName: finds the first unused "<prefix><n>" name
//
// # Terminal Utilities
//
// Password and line prompts used by interactive commands:
//   - Prompter: the interface workflows and the signer prompt through
//   - TerminalPrompter: reads hidden passwords from the terminal
//   - IsTerminal / IsTTYAvailable: terminal detection
package utils
