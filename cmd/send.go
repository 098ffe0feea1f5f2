package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/soundness/internal/configs"
	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/signer"
	"github.com/PolarWolf314/soundness/internal/submission"
	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/PolarWolf314/soundness/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	sendProofFile     string
	sendELFFile       string
	sendKeyName       string
	sendProvingSystem = submission.DefaultProvingSystem
)

func init() {
	sendCmd.Flags().StringVarP(&sendProofFile, "proof-file", "p", "", "path to the proof file")
	sendCmd.Flags().StringVarP(&sendELFFile, "elf-file", "l", "", "path to the ELF file")
	sendCmd.Flags().StringVarP(&sendKeyName, "key-name", "k", "", "name of the key pair used for signing")
	sendCmd.Flags().VarP(&sendProvingSystem, "proving-system", "s", "proving system: sp1, circom, risc0 or starknet")
	_ = sendCmd.MarkFlagRequired("proof-file")
	_ = sendCmd.MarkFlagRequired("elf-file")
	_ = sendCmd.MarkFlagRequired("key-name")
}

// resetSendCommandState resets the send command's global state for testing.
func resetSendCommandState() {
	sendProofFile = ""
	sendELFFile = ""
	sendKeyName = ""
	sendProvingSystem = submission.DefaultProvingSystem
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Sign and send a proof to the server",
	Long: `Reads a proof file and an ELF file, signs them with one of your key pairs,
and posts them to <endpoint>/api/proof.

The password of the key pair is asked once per run.

Examples:
  soundness send -p proof.bin -l program.elf -k alice
  soundness send -p proof.json -l circuit.wasm -k alice -s circom -e https://testnet.example.org`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := configs.Active
		Logger.Infof("Starting send command with key %s and proving system %s", sendKeyName, sendProvingSystem.String())
		Logger.Debugf("Proof file: %s, ELF file: %s, endpoint: %s", sendProofFile, sendELFFile, settings.Endpoint)

		stages := &stageSpinner{verbose: verbose}
		signing := hookedPrompter{
			Prompter: prompter,
			before:   func() { stages.end("") },
			after:    func() { stages.start("✍️  Signing payload with " + sendKeyName + "...") },
		}
		s := signer.New(keyStore(), sessionCache, signing)
		client := submission.NewClient(settings.Endpoint, settings.RequestTimeout.Duration)

		stages.start("📂 Reading proof and ELF files...")
		result, err := workflows.Send(context.Background(), workflows.SendOptions{
			Signer:        s,
			Client:        client,
			ProofPath:     sendProofFile,
			ELFPath:       sendELFFile,
			KeyName:       sendKeyName,
			ProvingSystem: sendProvingSystem,
			OnFilesRead: func() {
				stages.end(ui.Success.Sprint("✓") + " Read " + ui.Path.Sprint(utils.FileBaseName(sendProofFile)) +
					" and " + ui.Path.Sprint(utils.FileBaseName(sendELFFile)))
			},
			OnSigned: func() {
				Logger.Infof("Payload signed with %s", sendKeyName)
				stages.end(ui.Success.Sprint("✓") + " Signed payload with " + ui.Highlight.Sprint(sendKeyName))
				stages.start("🚀 Sending to " + client.URL() + "...")
			},
		})
		stages.end("")

		if errors.Is(err, kerrors.ErrSubmissionRejected) {
			fmt.Println(ui.Error.Sprint("✗") + " Error: Server returned status " + result.Response.Status)
			fmt.Println("Error details: " + result.Response.Body)
			return reported(err)
		}
		if err != nil {
			return fail(err, sendKeyName)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Successfully sent files to " + ui.Highlight.Sprint(result.Endpoint))
		fmt.Println("Server response: " + result.Response.Body)
		return nil
	},
}
