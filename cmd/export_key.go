package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/workflows"
	"github.com/spf13/cobra"
)

var exportKeyName string

func init() {
	exportKeyCmd.Flags().StringVarP(&exportKeyName, "name", "n", "", "name of the key pair to export")
	_ = exportKeyCmd.MarkFlagRequired("name")
}

// resetNameFlags resets the --name flags of the key commands for testing.
func resetNameFlags() {
	generateKeyName = ""
	importKeyName = ""
	exportKeyName = ""
}

var exportKeyCmd = &cobra.Command{
	Use:   "export-key",
	Short: "Show the mnemonic of a stored key pair",
	Long: `Decrypts a stored secret key with your password and prints its 24 word
mnemonic. Anyone holding the mnemonic controls the key.

Examples:
  soundness export-key --name alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export-key command for %s", exportKeyName)

		result, err := workflows.ExportKey(context.Background(), workflows.ExportKeyOptions{
			Store:  keyStore(),
			Name:   exportKeyName,
			Prompt: prompter,
		})
		if err != nil {
			return fail(err, exportKeyName)
		}

		fmt.Println()
		fmt.Println("🔑 Mnemonic for key pair " + ui.Highlight.Sprint(result.Name) + ":")
		fmt.Println()
		fmt.Println(ui.Mnemonic.Sprint(result.Mnemonic))
		fmt.Println()
		fmt.Println(ui.Warning.Sprint("⚠") + "  Keep this mnemonic secure and never share it with anyone!")
		return nil
	},
}
