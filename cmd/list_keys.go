package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/workflows"
	"github.com/spf13/cobra"
)

var listKeysCmd = &cobra.Command{
	Use:   "list-keys",
	Short: "List stored key pairs",
	Long: `Lists every key pair in the key store, sorted by name, with its public key
and whether an encrypted secret key is stored.

Examples:
  soundness list-keys
  soundness list-keys --store ~/vault/key_store.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list-keys command")
		spinner, cleanup := startSpinner("Loading key store...", verbose)
		defer cleanup()

		result, err := workflows.ListKeys(context.Background(), workflows.ListKeysOptions{Store: keyStore()})
		if err != nil {
			spinner.FinalMSG = formatError(err, "")
			return reported(err)
		}
		Logger.Debugf("Found %d key pairs", len(result.Keys))

		if len(result.Keys) == 0 {
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " No key pairs found. Generate one with " + ui.Code.Sprint("soundness generate-key --name <name>")
			return nil
		}

		msg := "Available key pairs:\n"
		for _, k := range result.Keys {
			status := ui.Success.Sprint("[secret key encrypted]")
			if !k.HasSecret {
				status = ui.Muted.Sprint("[secret key not stored]")
			}
			msg += fmt.Sprintf("- %s (Public key: %s) %s\n", ui.Highlight.Sprint(k.Name), k.PublicKey, status)
		}
		spinner.FinalMSG = msg
		return nil
	},
}
