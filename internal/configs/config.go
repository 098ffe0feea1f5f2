package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/soundness/internal/utils"
)

// ConfigPath returns the location of the user config file.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(dir, "soundness", "config.toml"), nil
}

// Load reads settings from the TOML file at path. A missing file yields the
// defaults. Keys absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	settings.fillDefaults()

	for _, p := range []*string{&settings.StorePath, &settings.PublicKeysPath, &settings.AuditLog} {
		if *p == "" {
			continue
		}
		expanded, err := utils.ExpandPath(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}
	return settings, nil
}

// Resolve loads the config file at path, falling back to ConfigPath when
// path is empty, then applies environment overrides.
func Resolve(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return nil, err
		}
	}

	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	settings.ApplyEnv(os.LookupEnv)
	return settings, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, settings *Settings) error {
	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
