package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
	"github.com/PolarWolf314/soundness/internal/keystore"
)

func TestGenerateKeyCommand(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"correct", "correct"}}, "generate-key", "--name", "alice")
	if err != nil {
		t.Fatalf("generate-key failed: %v\nOutput: %s", err, out)
	}
	if !strings.Contains(out, "Save this mnemonic phrase securely") {
		t.Errorf("Expected mnemonic banner, got: %s", out)
	}
	if !strings.Contains(out, "Generated new key pair 'alice'") {
		t.Errorf("Expected success message, got: %s", out)
	}

	store, err := keystore.New(env.StorePath).Load()
	if err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	if !store.Has("alice") {
		t.Error("Key pair was not stored")
	}
	if !strings.Contains(out, store.Keys["alice"].PublicKeyString) {
		t.Error("Expected the public key in the output")
	}
}

func TestGenerateKeyCommandCollision(t *testing.T) {
	env := setupTestEnvironment(t)

	if _, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"a", "a"}}, "generate-key", "--name", "alice"); err != nil {
		t.Fatalf("first generate-key failed: %v", err)
	}
	out, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"b", "b"}}, "generate-key", "--name", "alice")
	if !errors.Is(err, kerrors.ErrNameCollision) {
		t.Fatalf("Expected ErrNameCollision, got %v", err)
	}
	if !strings.Contains(out, "Key pair 'alice' already exists") {
		t.Errorf("Expected collision message, got: %s", out)
	}
	if strings.Contains(out, "mnemonic") {
		t.Error("No mnemonic should be shown for a taken name")
	}
}

func TestGenerateKeyCommandPasswordMismatch(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"one", "two"}}, "generate-key", "--name", "alice")
	if !errors.Is(err, kerrors.ErrPasswordMismatch) {
		t.Fatalf("Expected ErrPasswordMismatch, got %v", err)
	}
	if !strings.Contains(out, "Passwords do not match") {
		t.Errorf("Expected mismatch message, got: %s", out)
	}
	if _, err := os.Stat(env.StorePath); !os.IsNotExist(err) {
		t.Error("Store should not be written")
	}
}

func TestGenerateKeyCommandRequiresName(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, &scriptedPrompter{}, "generate-key")
	if err == nil {
		t.Fatal("Expected an error without --name")
	}
	if !strings.Contains(out, "name") {
		t.Errorf("Expected the missing flag to be reported, got: %s", out)
	}
}

func TestListKeysCommand(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, nil, "list-keys")
	if err != nil {
		t.Fatalf("list-keys failed: %v", err)
	}
	if !strings.Contains(out, "No key pairs found") {
		t.Errorf("Expected empty store message, got: %s", out)
	}

	for _, name := range []string{"zed", "alice"} {
		if _, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"pw", "pw"}}, "generate-key", "--name", name); err != nil {
			t.Fatalf("generate-key %s failed: %v", name, err)
		}
	}

	out, err = runCLI(t, env, nil, "list-keys")
	if err != nil {
		t.Fatalf("list-keys failed: %v", err)
	}
	alice := strings.Index(out, "- 'alice'")
	zed := strings.Index(out, "- 'zed'")
	if alice < 0 || zed < 0 || alice > zed {
		t.Errorf("Expected alice listed before zed, got: %s", out)
	}
	if strings.Count(out, "[secret key encrypted]") != 2 {
		t.Errorf("Expected both keys to report an encrypted secret, got: %s", out)
	}
}

func TestListKeysCommandCorruptStore(t *testing.T) {
	env := setupTestEnvironment(t)
	if err := os.WriteFile(env.StorePath, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, env, nil, "list-keys")
	if !errors.Is(err, kerrors.ErrStoreCorrupt) {
		t.Fatalf("Expected ErrStoreCorrupt, got %v", err)
	}
	if !strings.Contains(out, "Restore the key store") {
		t.Errorf("Expected recovery hint, got: %s", out)
	}
}

func TestExportAndImportKeyCommands(t *testing.T) {
	env := setupTestEnvironment(t)

	if _, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"correct", "correct"}}, "generate-key", "--name", "alice"); err != nil {
		t.Fatalf("generate-key failed: %v", err)
	}

	out, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"correct"}}, "export-key", "--name", "alice")
	if err != nil {
		t.Fatalf("export-key failed: %v\nOutput: %s", err, out)
	}
	mnemonic := mnemonicFromOutput(t, out)

	out, err = runCLI(t, env, &scriptedPrompter{lines: []string{mnemonic}, passwords: []string{"new", "new"}}, "import-key", "--name", "restored")
	if err != nil {
		t.Fatalf("import-key failed: %v\nOutput: %s", err, out)
	}
	if !strings.Contains(out, "Successfully imported key pair 'restored'") {
		t.Errorf("Expected import message, got: %s", out)
	}

	store, _ := keystore.New(env.StorePath).Load()
	if store.Keys["restored"].PublicKeyString != store.Keys["alice"].PublicKeyString {
		t.Error("Imported key should match the exported one")
	}
}

func TestExportKeyCommandWrongPassword(t *testing.T) {
	env := setupTestEnvironment(t)

	if _, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"correct", "correct"}}, "generate-key", "--name", "alice"); err != nil {
		t.Fatalf("generate-key failed: %v", err)
	}

	out, err := runCLI(t, env, &scriptedPrompter{passwords: []string{"wrong"}}, "export-key", "--name", "alice")
	if !errors.Is(err, kerrors.ErrAuthentication) {
		t.Fatalf("Expected ErrAuthentication, got %v", err)
	}
	if !strings.Contains(out, "Invalid password") {
		t.Errorf("Expected invalid password message, got: %s", out)
	}
}

func TestExportKeyCommandUnknownKey(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, &scriptedPrompter{}, "export-key", "--name", "ghost")
	if !errors.Is(err, kerrors.ErrKeyNotFound) {
		t.Fatalf("Expected ErrKeyNotFound, got %v", err)
	}
	if !strings.Contains(out, "Key pair 'ghost' not found") {
		t.Errorf("Expected not found message, got: %s", out)
	}
}

func TestImportKeyCommandInvalidMnemonic(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, &scriptedPrompter{lines: []string{"definitely not words"}}, "import-key", "--name", "alice")
	if !errors.Is(err, kerrors.ErrInvalidMnemonic) {
		t.Fatalf("Expected ErrInvalidMnemonic, got %v", err)
	}
	if !strings.Contains(out, "24 words") {
		t.Errorf("Expected mnemonic hint, got: %s", out)
	}
}

func TestBatchGenCommand(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, nil, "batch-gen", "--count", "3")
	if err != nil {
		t.Fatalf("batch-gen failed: %v\nOutput: %s", err, out)
	}
	if !strings.Contains(out, "empty password") {
		t.Errorf("Expected empty password warning, got: %s", out)
	}

	data, err := os.ReadFile(filepath.Join(env.Dir, "public_keys.txt"))
	if err != nil {
		t.Fatalf("Public keys file not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 public keys, got %d", len(lines))
	}

	store, _ := keystore.New(env.StorePath).Load()
	for i, name := range []string{"batch_key_0", "batch_key_1", "batch_key_2"} {
		if store.Keys[name].PublicKeyString != lines[i] {
			t.Errorf("%s does not match line %d of the artifact", name, i)
		}
	}
}

func TestBatchGenCommandZero(t *testing.T) {
	env := setupTestEnvironment(t)

	out, err := runCLI(t, env, nil, "batch-gen", "--count", "0")
	if err != nil {
		t.Fatalf("batch-gen 0 should succeed: %v", err)
	}
	if !strings.Contains(out, "must be greater than 0") {
		t.Errorf("Expected nothing-to-do message, got: %s", out)
	}
	if _, err := os.Stat(filepath.Join(env.Dir, "public_keys.txt")); !os.IsNotExist(err) {
		t.Error("No artifact should be written")
	}
	if _, err := os.Stat(env.StorePath); !os.IsNotExist(err) {
		t.Error("No store should be written")
	}
}

// mnemonicFromOutput returns the first line of output made of 24 words.
func mnemonicFromOutput(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if len(strings.Fields(line)) == 24 {
			return strings.TrimSpace(line)
		}
	}
	t.Fatalf("No mnemonic found in output: %s", out)
	return ""
}
