package workflows

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/soundness/internal/configs"
	"github.com/PolarWolf314/soundness/internal/keystore"
)

// fakePrompter replays scripted answers and records the prompts it saw.
type fakePrompter struct {
	passwords []string
	lines     []string
	prompts   []string
}

func (p *fakePrompter) ReadPassword(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.passwords) == 0 {
		return "", errors.New("no scripted password")
	}
	pw := p.passwords[0]
	p.passwords = p.passwords[1:]
	return pw, nil
}

func (p *fakePrompter) ReadLine(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", errors.New("no scripted line")
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

// newTestStore returns a repository in a temp dir and points the audit log
// at the same directory.
func newTestStore(t *testing.T) *keystore.Repository {
	t.Helper()
	dir := t.TempDir()

	original := configs.Active
	settings := configs.DefaultSettings()
	settings.StorePath = filepath.Join(dir, "key_store.json")
	settings.PublicKeysPath = filepath.Join(dir, "public_keys.txt")
	configs.Active = settings
	t.Cleanup(func() { configs.Active = original })

	return keystore.New(settings.StorePath)
}
