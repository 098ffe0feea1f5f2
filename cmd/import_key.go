package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/workflows"
	"github.com/spf13/cobra"
)

var importKeyName string

func init() {
	importKeyCmd.Flags().StringVarP(&importKeyName, "name", "n", "", "name for the imported key pair")
	_ = importKeyCmd.MarkFlagRequired("name")
}

var importKeyCmd = &cobra.Command{
	Use:   "import-key",
	Short: "Import a key pair from its mnemonic",
	Long: `Recreates a key pair from its 24 word mnemonic and stores it under a new
password.

The mnemonic is read as a single line from standard input.

Examples:
  soundness import-key --name alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import-key command for %s", importKeyName)

		result, err := workflows.ImportKey(context.Background(), workflows.ImportKeyOptions{
			Store:  keyStore(),
			Name:   importKeyName,
			Prompt: prompter,
		})
		if err != nil {
			return fail(err, importKeyName)
		}

		fmt.Println()
		fmt.Println(ui.Success.Sprint("✓") + " Successfully imported key pair " + ui.Highlight.Sprint(result.Name))
		fmt.Println("🔑 Public key: " + result.PublicKey)
		return nil
	},
}
