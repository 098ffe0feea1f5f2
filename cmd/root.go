package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/soundness/internal/configs"
	"github.com/PolarWolf314/soundness/internal/keystore"
	logger "github.com/PolarWolf314/soundness/internal/logging"
	"github.com/PolarWolf314/soundness/internal/session"
	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	endpoint   string
	storePath  string
	configPath string
	Logger     logger.Logger

	// sessionCache holds the key store password for the lifetime of the process.
	sessionCache = session.New()

	// prompter collects passwords and mnemonics. Tests replace it.
	prompter utils.Prompter = utils.NewTerminalPrompter()

	RootCmd = &cobra.Command{
		Use:   "soundness",
		Short: "Manage signing keys and send signed proofs",
		Long: `soundness manages Ed25519 signing key pairs in a local, password
protected key store and uses them to sign proof submissions.

Secret keys are encrypted with AES-256-GCM under a key derived from your
password (PBKDF2-HMAC-SHA256). Each key pair can be backed up and restored
with its 24 word mnemonic.

Examples:
  soundness generate-key --name alice
  soundness list-keys
  soundness send -p proof.bin -l program.elf -k alice -s sp1`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupCommand,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", configs.DefaultEndpoint, "server endpoint proofs are sent to")
	RootCmd.PersistentFlags().StringVar(&storePath, "store", configs.DefaultStorePath, "path to the key store file")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default $XDG_CONFIG_HOME/soundness/config.toml)")

	RootCmd.AddCommand(generateKeyCmd)
	RootCmd.AddCommand(listKeysCmd)
	RootCmd.AddCommand(exportKeyCmd)
	RootCmd.AddCommand(importKeyCmd)
	RootCmd.AddCommand(batchGenCmd)
	RootCmd.AddCommand(sendCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// setupCommand configures logging and resolves settings before any command runs.
// Flags win over the environment, which wins over the config file.
func setupCommand(cmd *cobra.Command, args []string) error {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

	settings, err := configs.Resolve(configPath)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		expanded, err := utils.ExpandPath(storePath)
		if err != nil {
			return err
		}
		settings.StorePath = expanded
	}
	if flags.Changed("endpoint") {
		settings.Endpoint = endpoint
	}

	configs.Active = settings
	Logger.Debugf("Using key store %s and endpoint %s", settings.StorePath, settings.Endpoint)
	return nil
}

// keyStore returns the repository for the active key store.
func keyStore() *keystore.Repository {
	return keystore.New(configs.Active.StorePath)
}

// reportedError marks an error whose message has already been shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// Execute runs the root command and wipes the cached password afterwards.
// Errors that were not already shown are printed to stderr.
func Execute() error {
	defer sessionCache.Clear()

	err := RootCmd.Execute()
	if err == nil {
		return nil
	}
	var shown *reportedError
	if !errors.As(err, &shown) {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
	}
	return err
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	endpoint = configs.DefaultEndpoint
	storePath = configs.DefaultStorePath
	configPath = ""
	sessionCache = session.New()
	configs.Active = configs.DefaultSettings()
	resetNameFlags()
	resetBatchGenCommandState()
	resetSendCommandState()
	resetLogCommandState()
	resetConfigShowState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag so values from
// one test run do not leak into the next.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetPrompter replaces the interactive prompter for testing.
func SetPrompter(p utils.Prompter) {
	prompter = p
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
