package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestHookedPrompterWrapsPasswordPrompts(t *testing.T) {
	var events []string
	inner := &scriptedPrompter{passwords: []string{"pw"}, lines: []string{"words"}}
	p := hookedPrompter{
		Prompter: inner,
		before:   func() { events = append(events, "before") },
		after:    func() { events = append(events, "after") },
	}

	pw, err := p.ReadPassword("Password: ")
	if err != nil || pw != "pw" {
		t.Fatalf("ReadPassword() = %q, %v", pw, err)
	}
	if strings.Join(events, ",") != "before,after" {
		t.Errorf("Unexpected hook order %v", events)
	}

	events = nil
	if line, err := p.ReadLine("Mnemonic: "); err != nil || line != "words" {
		t.Fatalf("ReadLine() = %q, %v", line, err)
	}
	if len(events) != 0 {
		t.Errorf("Line prompts should not run hooks, got %v", events)
	}

	// The scripted passwords are used up, so the next prompt fails.
	events = nil
	if _, err := p.ReadPassword("Password: "); err == nil {
		t.Fatal("Expected an error from the exhausted prompter")
	}
	if strings.Join(events, ",") != "before" {
		t.Errorf("after must not run when the prompt fails, got %v", events)
	}
}

func TestStageSpinnerPrintsFinalMessages(t *testing.T) {
	out, err := captureOutput(func() error {
		stages := &stageSpinner{}
		stages.start("first step")
		stages.end("first done")
		stages.end("printed without a running step")
		stages.start("second step")
		stages.start("third step")
		stages.end("")
		return errors.New("done")
	})
	if err == nil {
		t.Fatal("Expected the function's error to be returned")
	}

	want := "first done\nprinted without a running step\n"
	if out != want {
		t.Errorf("Output = %q, want %q", out, want)
	}
}
