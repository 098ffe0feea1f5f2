package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/configs"
	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	batchGenCount  int
	batchGenOutput string
)

func init() {
	batchGenCmd.Flags().IntVarP(&batchGenCount, "count", "c", 0, "number of key pairs to generate")
	batchGenCmd.Flags().StringVarP(&batchGenOutput, "output", "o", "", "file the public keys are written to (default public_keys.txt)")
	_ = batchGenCmd.MarkFlagRequired("count")
}

// resetBatchGenCommandState resets the batch-gen command's global state for testing.
func resetBatchGenCommandState() {
	batchGenCount = 0
	batchGenOutput = ""
}

var batchGenCmd = &cobra.Command{
	Use:   "batch-gen",
	Short: "Generate many key pairs without passwords",
	Long: `Generates key pairs named batch_key_<n> for bulk registration and writes
their public keys, one per line, to public_keys.txt.

WARNING: batch secret keys are encrypted with an EMPTY password. Anyone who
can read the key store can use them. Only use batch keys for testnet
registration, never for keys that hold value.

Examples:
  soundness batch-gen --count 100
  soundness batch-gen -c 10 -o testnet_keys.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting batch-gen command with count %d", batchGenCount)

		if batchGenCount < 0 {
			return fmt.Errorf("--count must not be negative, got %d", batchGenCount)
		}
		if batchGenCount == 0 {
			fmt.Println(ui.Info.Sprint("ℹ") + " Number of keys to generate must be greater than 0. Nothing to do.")
			return nil
		}

		Logger.WarnfUser("Batch keys are protected by an empty password. Use them for testnet registration only.")

		output := batchGenOutput
		if output == "" {
			output = configs.Active.PublicKeysPath
		}

		spinner, cleanup := startSpinner(fmt.Sprintf("Generating %d key pair(s)...", batchGenCount), verbose)
		defer cleanup()

		result, err := workflows.BatchGenerate(context.Background(), workflows.BatchGenerateOptions{
			Store:      keyStore(),
			Count:      batchGenCount,
			OutputPath: output,
			Progress: func(done, total int) {
				spinner.Lock()
				spinner.Suffix = fmt.Sprintf(" Generating key pairs... %d/%d", done, total)
				spinner.Unlock()
			},
		})
		if err != nil {
			spinner.FinalMSG = formatError(err, "")
			return reported(err)
		}

		first, last := result.Names[0], result.Names[len(result.Names)-1]
		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Generated %d key pair(s) ", len(result.Names)) +
			ui.Muted.Sprint(first+" .. "+last) + "\n" +
			"💾 Key store updated: " + ui.Path.Sprint(keyStore().Path()) + "\n" +
			"🔑 All public keys written to " + ui.Path.Sprint(result.OutputPath)
		return nil
	},
}
