package logger

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureStreams redirects stdout and stderr while fn runs.
func captureStreams(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origOut, origErr

	var stdout, stderr bytes.Buffer
	_, _ = io.Copy(&stdout, outR)
	_, _ = io.Copy(&stderr, errR)
	return stdout.String(), stderr.String()
}

func TestInfofRespectsVerbosity(t *testing.T) {
	color.NoColor = true

	stdout, _ := captureStreams(t, func() {
		Logger{}.Infof("hidden %d", 1)
	})
	if stdout != "" {
		t.Errorf("Expected no output without verbose, got %q", stdout)
	}

	stdout, _ = captureStreams(t, func() {
		Logger{Verbose: true}.Infof("shown %d", 2)
	})
	if !strings.Contains(stdout, "[info] shown 2") {
		t.Errorf("Expected info line, got %q", stdout)
	}
}

func TestDebugfOnlyInDebugMode(t *testing.T) {
	color.NoColor = true

	stdout, _ := captureStreams(t, func() {
		Logger{Verbose: true}.Debugf("hidden")
	})
	if stdout != "" {
		t.Errorf("Expected no debug output in verbose mode, got %q", stdout)
	}

	stdout, _ = captureStreams(t, func() {
		Logger{Debug: true}.Debugf("key %s", "alice")
	})
	if !strings.Contains(stdout, "[debug] key alice") {
		t.Errorf("Expected debug line, got %q", stdout)
	}
}

func TestWarnAndErrorGoToStderr(t *testing.T) {
	color.NoColor = true

	stdout, stderr := captureStreams(t, func() {
		l := Logger{}
		l.Warnf("careful")
		l.Errorf("broken")
	})
	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "[warn] careful") || !strings.Contains(stderr, "[error] broken") {
		t.Errorf("Expected warn and error lines on stderr, got %q", stderr)
	}
}

func TestErrorfAndReturnWrapsErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := Logger{}.ErrorfAndReturn("loading store: %w", sentinel)
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected returned error to wrap sentinel, got %v", err)
	}
	if err.Error() != "loading store: sentinel" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}
