// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and scripting interactive prompts.
package cmd

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/soundness/internal/configs"
	logger "github.com/PolarWolf314/soundness/internal/logging"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/spf13/cobra"
)

// testEnv describes the temporary files used by a command test.
type testEnv struct {
	Dir        string
	StorePath  string
	ConfigPath string
}

// setupTestEnvironment moves into a fresh temp directory, clears
// environment overrides, and restores global state when the test ends.
func setupTestEnvironment(t *testing.T) testEnv {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Setenv(configs.EnvKeyStore, "")
	t.Setenv(configs.EnvEndpoint, "")
	t.Setenv("NO_COLOR", "1")

	originalPrompter := prompter
	ResetGlobalState()

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		prompter = originalPrompter
		ResetGlobalState()
	})

	return testEnv{
		Dir:        tempDir,
		StorePath:  filepath.Join(tempDir, "key_store.json"),
		ConfigPath: filepath.Join(tempDir, "config.toml"),
	}
}

// scriptedPrompter answers prompts from fixed lists.
type scriptedPrompter struct {
	passwords []string
	lines     []string
	asked     int
}

var _ utils.Prompter = (*scriptedPrompter)(nil)

func (p *scriptedPrompter) ReadPassword(prompt string) (string, error) {
	p.asked++
	if len(p.passwords) == 0 {
		return "", errors.New("no scripted password")
	}
	pw := p.passwords[0]
	p.passwords = p.passwords[1:]
	return pw, nil
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error) {
	p.asked++
	if len(p.lines) == 0 {
		return "", errors.New("no scripted line")
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// createTestCLI prepares the root command to run args against env.
func createTestCLI(env testEnv, args []string, verboseFlag, debugFlag bool) *cobra.Command {
	Logger = logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	}

	full := append([]string{}, args...)
	full = append(full, "--store", env.StorePath, "--config", env.ConfigPath)
	if verboseFlag {
		full = append(full, "--verbose")
	}
	if debugFlag {
		full = append(full, "--debug")
	}
	RootCmd.SetArgs(full)
	return RootCmd
}

// runCLI executes args with prompts answered by p and returns the output.
func runCLI(t *testing.T, env testEnv, p *scriptedPrompter, args ...string) (string, error) {
	t.Helper()
	if p != nil {
		SetPrompter(p)
	}
	createTestCLI(env, args, false, false)
	out, err := captureOutput(Execute)
	ResetGlobalState()
	return out, err
}
