package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter collects interactive input.
type Prompter interface {
	// ReadPassword asks for a secret without echoing it.
	ReadPassword(prompt string) (string, error)
	// ReadLine asks for a single line of visible input.
	ReadLine(prompt string) (string, error)
}

// TerminalPrompter reads passwords from the controlling terminal and lines
// from In. When no terminal is available, passwords are read as lines from
// In so that scripted use keeps working.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewTerminalPrompter returns a prompter bound to stdin and stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

// ReadPassword implements Prompter.
func (p *TerminalPrompter) ReadPassword(prompt string) (string, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case p.In == os.Stdin && IsTerminal():
		raw, err = readHidden(int(os.Stdin.Fd()), prompt, p.Out)
	case IsTTYAvailable():
		raw, err = readPasswordFromTTY(prompt, p.Out)
	default:
		return p.ReadLine(prompt)
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ReadLine implements Prompter.
func (p *TerminalPrompter) ReadLine(prompt string) (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	if p.Out != nil {
		fmt.Fprint(p.Out, prompt)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
