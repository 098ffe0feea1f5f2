package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/workflows"
	"github.com/spf13/cobra"
)

var generateKeyName string

func init() {
	generateKeyCmd.Flags().StringVarP(&generateKeyName, "name", "n", "", "name for the new key pair")
	_ = generateKeyCmd.MarkFlagRequired("name")
}

var generateKeyCmd = &cobra.Command{
	Use:   "generate-key",
	Short: "Generate a new key pair",
	Long: `Generates a new Ed25519 key pair and stores it in the key store.

The 24 word mnemonic of the secret key is shown once, before you choose a
password. Write it down: it is the only way to recover the key if the key
store is lost. The secret key is stored encrypted under your password.

Examples:
  soundness generate-key --name alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate-key command for %s", generateKeyName)

		result, err := workflows.GenerateKey(context.Background(), workflows.GenerateKeyOptions{
			Store:        keyStore(),
			Name:         generateKeyName,
			Prompt:       prompter,
			ShowMnemonic: printNewMnemonic,
		})
		if err != nil {
			return fail(err, generateKeyName)
		}

		Logger.Infof("Key pair %s saved to %s", result.Name, keyStore().Path())
		fmt.Println()
		fmt.Println(ui.Success.Sprint("✓") + " Generated new key pair " + ui.Highlight.Sprint(result.Name))
		fmt.Println("🔑 Public key: " + result.PublicKey)
		return nil
	},
}

func printNewMnemonic(mnemonic string) {
	fmt.Println()
	fmt.Println("📝 " + ui.Info.Sprint("IMPORTANT:") + " Save this mnemonic phrase securely!")
	fmt.Println(ui.Warning.Sprint("⚠") + "  This is the only time it is shown. You need it to recover your secret key if the key store is lost.")
	fmt.Println()
	fmt.Println(ui.Mnemonic.Sprint(mnemonic))
	fmt.Println()
}
