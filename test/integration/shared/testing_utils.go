// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and driving the CLI with scripted prompts.
package shared

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/soundness/cmd"
	"github.com/PolarWolf314/soundness/internal/configs"
	logger "github.com/PolarWolf314/soundness/internal/logging"
	"github.com/PolarWolf314/soundness/internal/utils"
)

// Env holds the paths of an isolated test environment.
type Env struct {
	Dir        string
	StorePath  string
	ConfigPath string
}

// SetupTestEnvironment changes into a fresh temporary directory and resets
// the CLI's global state when the test ends.
func SetupTestEnvironment(t *testing.T) Env {
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
	cmd.ResetGlobalState()

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		cmd.ResetGlobalState()
		cmd.SetPrompter(utils.NewTerminalPrompter())
	})

	return Env{
		Dir:        tempDir,
		StorePath:  filepath.Join(tempDir, "key_store.json"),
		ConfigPath: filepath.Join(tempDir, "config.toml"),
	}
}

// Prompter answers password and line prompts from fixed lists.
type Prompter struct {
	Passwords []string
	Lines     []string
	Asked     int
}

// ReadPassword returns the next scripted password.
func (p *Prompter) ReadPassword(prompt string) (string, error) {
	p.Asked++
	if len(p.Passwords) == 0 {
		return "", errors.New("no scripted password")
	}
	pw := p.Passwords[0]
	p.Passwords = p.Passwords[1:]
	return pw, nil
}

// ReadLine returns the next scripted line.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	p.Asked++
	if len(p.Lines) == 0 {
		return "", errors.New("no scripted line")
	}
	line := p.Lines[0]
	p.Lines = p.Lines[1:]
	return line, nil
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
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

// Run executes the CLI with args against env, answering prompts from p.
func Run(t *testing.T, env Env, p *Prompter, args ...string) (string, error) {
	t.Helper()
	if p != nil {
		cmd.SetPrompter(p)
	}
	cmd.SetLogger(logger.Logger{})

	full := append([]string{}, args...)
	full = append(full, "--store", env.StorePath, "--config", env.ConfigPath)
	cmd.RootCmd.SetArgs(full)

	out, err := CaptureOutput(cmd.Execute)
	cmd.ResetGlobalState()
	return out, err
}
