package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/soundness/internal/configs"
	"github.com/PolarWolf314/soundness/internal/utils"
	"github.com/google/uuid"
)

// Operation names recorded in the audit log.
const (
	OpGenerate = "generate-key"
	OpImport   = "import-key"
	OpExport   = "export-key"
	OpBatchGen = "batch-gen"
	OpSend     = "send"
)

// TimestampFormat is the layout of Entry.Timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Local account name.
	Host      string `json:"host,omitempty"`
	Operation string `json:"op"`

	// Optional fields depending on operation.
	KeyName       string   `json:"key_name,omitempty"`       // For generate/import/export/send.
	KeyNames      []string `json:"key_names,omitempty"`      // For batch-gen.
	OutputPath    string   `json:"output_path,omitempty"`    // For batch-gen.
	Endpoint      string   `json:"endpoint,omitempty"`       // For send.
	ProvingSystem string   `json:"proving_system,omitempty"` // For send.
	Status        int      `json:"status,omitempty"`         // HTTP status for send.
}

// Log appends an entry to the audit log.
// Failures are swallowed; operations never fail because of the audit log.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}
	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return
		}
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op with the local user and host filled in.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op}
	if user, err := utils.GetUsername(); err == nil {
		entry.User = user
	}
	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}
	return entry
}

// LogPath returns the path to the audit log file.
// Returns empty string if no settings are active.
func LogPath() string {
	if configs.Active == nil {
		return ""
	}
	return configs.Active.AuditLogPath()
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
