package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/soundness/internal/configs"
	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configShowJSON  bool
	configInitForce bool

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage soundness configuration",
		Long: `Provides commands for inspecting and creating the configuration file.

Settings are resolved from built-in defaults, then the config file, then the
SOUNDNESS_KEY_STORE and SOUNDNESS_ENDPOINT environment variables, then the
--store and --endpoint flags.

Examples:
  # Write a config file with the default settings
  soundness config init

  # Show the settings in effect
  soundness config show`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Display the settings in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config show command")
			settings := configs.Active

			if configShowJSON {
				data, err := json.MarshalIndent(map[string]interface{}{
					"store_path":       settings.StorePath,
					"public_keys_path": settings.PublicKeysPath,
					"endpoint":         settings.Endpoint,
					"audit_log":        settings.AuditLogPath(),
					"request_timeout":  settings.RequestTimeout.String(),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal settings to JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(ui.Info.Sprint("Settings:"))
			fmt.Printf("  %-18s %s\n", "store_path", ui.Path.Sprint(settings.StorePath))
			fmt.Printf("  %-18s %s\n", "public_keys_path", ui.Path.Sprint(settings.PublicKeysPath))
			fmt.Printf("  %-18s %s\n", "endpoint", ui.Highlight.Sprint(settings.Endpoint))
			fmt.Printf("  %-18s %s\n", "audit_log", ui.Path.Sprint(settings.AuditLogPath()))
			fmt.Printf("  %-18s %s\n", "request_timeout", settings.RequestTimeout.String())
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config init command")
			path, err := resolvedConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !configInitForce {
				fmt.Println(ui.Warning.Sprint("⚠") + " Config file already exists at " + ui.Path.Sprint(path) + "\n" +
					ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--force") + " to overwrite it")
				return nil
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return Logger.ErrorfAndReturn("failed to check config file: %v", err)
			}

			if err := configs.Save(path, configs.Active); err != nil {
				return Logger.ErrorfAndReturn("%v", err)
			}
			fmt.Println(ui.Success.Sprint("✓") + " Wrote config file " + ui.Path.Sprint(path))
			return nil
		},
	}
)

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigShowState resets the config commands' global state for testing.
func resetConfigShowState() {
	configShowJSON = false
	configInitForce = false
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return configs.ConfigPath()
}
