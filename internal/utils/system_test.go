package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsValidKeyName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Simple", "alice", true},
		{"WithSpaceInside", "my key", true},
		{"BatchStyle", "batch_key_12", true},
		{"Unicode", "clé-1", true},
		{"Empty", "", false},
		{"OnlySpaces", "   ", false},
		{"LeadingSpace", " alice", false},
		{"TrailingNewline", "alice\n", false},
		{"ControlChar", "al\x00ice", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidKeyName(tc.input); got != tc.expected {
				t.Errorf("IsValidKeyName(%q) = %t, expected %t", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNextFreeName(t *testing.T) {
	taken := map[string]bool{"batch_key_0": true, "batch_key_1": true, "batch_key_3": true}
	isTaken := func(name string) bool { return taken[name] }

	name, n := NextFreeName("batch_key_", 0, isTaken)
	if name != "batch_key_2" || n != 2 {
		t.Errorf("Expected batch_key_2, got %s (%d)", name, n)
	}

	name, n = NextFreeName("batch_key_", 3, isTaken)
	if name != "batch_key_4" || n != 4 {
		t.Errorf("Expected batch_key_4, got %s (%d)", name, n)
	}

	name, _ = NextFreeName("batch_key_", 0, func(string) bool { return false })
	if name != "batch_key_0" {
		t.Errorf("Expected batch_key_0 on empty set, got %s", name)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/keys/key_store.json")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "keys", "key_store.json") {
		t.Errorf("Unexpected expansion: %s", got)
	}

	got, _ = ExpandPath("relative/key_store.json")
	if got != "relative/key_store.json" {
		t.Errorf("Relative paths should be unchanged, got %s", got)
	}
	got, _ = ExpandPath("~other/file")
	if got != "~other/file" {
		t.Errorf("Only ~ and ~/ should expand, got %s", got)
	}
}

func TestFileBaseName(t *testing.T) {
	tests := map[string]string{
		"proofs/proof.bin": "proof.bin",
		"program.elf":      "program.elf",
		"":                 "unknown",
		"/":                "unknown",
		".":                "unknown",
	}
	for input, want := range tests {
		if got := FileBaseName(input); got != want {
			t.Errorf("FileBaseName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTerminalPrompterReadsLines(t *testing.T) {
	p := &TerminalPrompter{In: strings.NewReader("first line\r\nsecond\nlast")}

	for _, want := range []string{"first line", "second", "last"} {
		got, err := p.ReadLine("> ")
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := p.ReadLine("> "); err == nil {
		t.Error("Expected an error once input is exhausted")
	}
}

func TestGetUsername(t *testing.T) {
	name, err := GetUsername()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}
	if name == "" {
		t.Error("Expected a non-empty username")
	}
}
