package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultStorePath is the key store used when nothing else is configured.
	DefaultStorePath = "key_store.json"

	// DefaultPublicKeysPath is where batch-gen writes public keys.
	DefaultPublicKeysPath = "public_keys.txt"

	// DefaultEndpoint is the proof submission server.
	DefaultEndpoint = "http://localhost:3000"

	// DefaultRequestTimeout bounds a single submission request.
	DefaultRequestTimeout = 30 * time.Second

	// AuditLogName is the audit file created next to the store.
	AuditLogName = "audit.jsonl"
)

// Environment variables that override the config file.
const (
	EnvKeyStore = "SOUNDNESS_KEY_STORE"
	EnvEndpoint = "SOUNDNESS_ENDPOINT"
)

// Duration is a time.Duration written as a string like "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Settings holds the resolved configuration.
type Settings struct {
	StorePath      string   `toml:"store_path"`
	PublicKeysPath string   `toml:"public_keys_path"`
	Endpoint       string   `toml:"endpoint"`
	AuditLog       string   `toml:"audit_log,omitempty"`
	RequestTimeout Duration `toml:"request_timeout"`
}

// Active is the configuration in use by the running command.
var Active = DefaultSettings()

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		StorePath:      DefaultStorePath,
		PublicKeysPath: DefaultPublicKeysPath,
		Endpoint:       DefaultEndpoint,
		RequestTimeout: Duration{DefaultRequestTimeout},
	}
}

// AuditLogPath returns the audit file, defaulting to one beside the store.
func (s *Settings) AuditLogPath() string {
	if s.AuditLog != "" {
		return s.AuditLog
	}
	return filepath.Join(filepath.Dir(s.StorePath), AuditLogName)
}

// ApplyEnv overrides settings from the environment.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvKeyStore); ok && v != "" {
		s.StorePath = v
	}
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		s.Endpoint = v
	}
}

// fillDefaults restores defaults for keys a config file left blank.
func (s *Settings) fillDefaults() {
	d := DefaultSettings()
	if s.StorePath == "" {
		s.StorePath = d.StorePath
	}
	if s.PublicKeysPath == "" {
		s.PublicKeysPath = d.PublicKeysPath
	}
	if s.Endpoint == "" {
		s.Endpoint = d.Endpoint
	}
	if s.RequestTimeout.Duration <= 0 {
		s.RequestTimeout = d.RequestTimeout
	}
}
