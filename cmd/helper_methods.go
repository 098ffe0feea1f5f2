package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/ui"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print to stdout so tests can capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// stageSpinner shows one spinner at a time for a command made of several
// steps. Starting a step ends the previous one.
type stageSpinner struct {
	verbose bool
	current *spinner.Spinner
	stop    func()
}

// start ends the running step without a message and spins for the next one.
func (s *stageSpinner) start(message string) {
	s.end("")
	s.current, s.stop = startSpinner(message, s.verbose)
}

// end stops the running step and prints final. When no step is running,
// final is printed directly.
func (s *stageSpinner) end(final string) {
	if s.stop == nil {
		if final != "" {
			fmt.Print(ui.EnsureNewline(final))
		}
		return
	}
	s.current.FinalMSG = final
	s.stop()
	s.current, s.stop = nil, nil
}

// hookedPrompter calls before and after around every password prompt, so
// spinners can be paused while the user types.
type hookedPrompter struct {
	utils.Prompter
	before func()
	after  func()
}

func (p hookedPrompter) ReadPassword(prompt string) (string, error) {
	if p.before != nil {
		p.before()
	}
	password, err := p.Prompter.ReadPassword(prompt)
	if err == nil && p.after != nil {
		p.after()
	}
	return password, err
}

// formatError turns a workflow error into a message for the user.
func formatError(err error, keyName string) string {
	switch {
	case errors.Is(err, kerrors.ErrNameCollision):
		return ui.Error.Sprint("✗") + " Key pair " + ui.Highlight.Sprint(keyName) + " already exists\n" +
			ui.Info.Sprint("→") + " Choose another name or run " + ui.Code.Sprint("soundness list-keys")

	case errors.Is(err, kerrors.ErrKeyNotFound):
		return ui.Error.Sprint("✗") + " Key pair " + ui.Highlight.Sprint(keyName) + " not found\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("soundness list-keys") + " to see available key pairs"

	case errors.Is(err, kerrors.ErrSecretNotStored):
		return ui.Error.Sprint("✗") + " No secret key is stored for " + ui.Highlight.Sprint(keyName)

	case errors.Is(err, kerrors.ErrAuthentication):
		return ui.Error.Sprint("✗") + " Invalid password. Please try again with the correct password."

	case errors.Is(err, kerrors.ErrPasswordMismatch):
		return ui.Error.Sprint("✗") + " Passwords do not match"

	case errors.Is(err, kerrors.ErrInvalidMnemonic):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Enter the 24 words shown when the key pair was generated or exported"

	case errors.Is(err, kerrors.ErrInvalidKeyName):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Names must not be blank or contain control characters"

	case errors.Is(err, kerrors.ErrStoreCorrupt):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Restore the key store from a backup or re-import your keys with " + ui.Code.Sprint("soundness import-key")

	case errors.Is(err, kerrors.ErrStoreChanged):
		return ui.Error.Sprint("✗") + " The key store kept changing while it was being read\n" +
			ui.Info.Sprint("→") + " Make sure no other soundness command is running and try again"

	default:
		return ui.Error.Sprint("✗") + " " + err.Error()
	}
}

// fail prints a friendly message for err and returns it marked as shown.
func fail(err error, keyName string) error {
	Logger.Debugf("Command failed: %v", err)
	fmt.Println(formatError(err, keyName))
	return reported(err)
}
