package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/PolarWolf314/soundness/internal/audit"
	kerrors "github.com/PolarWolf314/soundness/internal/errors"
)

func seedAuditLog(t *testing.T) {
	t.Helper()
	newTestStore(t)
	audit.Log(audit.Entry{Operation: audit.OpGenerate, KeyName: "alice", Timestamp: "2026-01-01T10:00:00.000000Z"})
	audit.Log(audit.Entry{Operation: audit.OpBatchGen, KeyNames: []string{"batch_key_0", "batch_key_1"}, OutputPath: "public_keys.txt", Timestamp: "2026-02-01T10:00:00.000000Z"})
	audit.Log(audit.Entry{Operation: audit.OpSend, KeyName: "alice", Status: 200, Timestamp: "2026-03-01T10:00:00.000000Z"})
	audit.Log(audit.Entry{Operation: audit.OpExport, KeyName: "batch_key_1", Timestamp: "2026-04-01T10:00:00.000000Z"})
}

func TestLogNoEntries(t *testing.T) {
	newTestStore(t)

	result, err := Log(context.Background(), LogOptions{})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(result.Entries) != 0 || result.TotalEntriesBeforeFilter != 0 {
		t.Errorf("Expected an empty log, got %+v", result)
	}
}

func TestLogFilters(t *testing.T) {
	seedAuditLog(t)

	tests := []struct {
		name string
		opts LogOptions
		want []string
	}{
		{"all", LogOptions{}, []string{audit.OpGenerate, audit.OpBatchGen, audit.OpSend, audit.OpExport}},
		{"by key", LogOptions{KeyName: "alice"}, []string{audit.OpGenerate, audit.OpSend}},
		{"by batch key", LogOptions{KeyName: "batch_key_1"}, []string{audit.OpBatchGen, audit.OpExport}},
		{"by operation", LogOptions{Operations: "send, EXPORT-KEY"}, []string{audit.OpSend, audit.OpExport}},
		{"since", LogOptions{Since: "2026-03-01"}, []string{audit.OpSend, audit.OpExport}},
		{"until", LogOptions{Until: "2026-02-01"}, []string{audit.OpGenerate, audit.OpBatchGen}},
		{"limit", LogOptions{Limit: 2}, []string{audit.OpSend, audit.OpExport}},
		{"reverse limit", LogOptions{Limit: 2, Reverse: true}, []string{audit.OpExport, audit.OpSend}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Log(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Log failed: %v", err)
			}
			if result.TotalEntriesBeforeFilter != 4 {
				t.Errorf("Expected 4 entries before filtering, got %d", result.TotalEntriesBeforeFilter)
			}
			var got []string
			for _, e := range result.Entries {
				got = append(got, e.Operation)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestLogInvalidDate(t *testing.T) {
	newTestStore(t)

	if _, err := Log(context.Background(), LogOptions{Since: "01/02/2026"}); !errors.Is(err, kerrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
	if _, err := Log(context.Background(), LogOptions{Until: "yesterday"}); !errors.Is(err, kerrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestFormatDetails(t *testing.T) {
	tests := []struct {
		entry audit.Entry
		want  string
	}{
		{audit.Entry{Operation: audit.OpGenerate, KeyName: "alice"}, "alice"},
		{audit.Entry{Operation: audit.OpBatchGen, KeyNames: []string{"a", "b"}, OutputPath: "out.txt"}, "a, b -> out.txt"},
		{audit.Entry{Operation: audit.OpBatchGen, KeyNames: []string{"a", "b", "c", "d"}, OutputPath: "out.txt"}, "4 keys -> out.txt"},
		{audit.Entry{Operation: audit.OpSend, KeyName: "alice", ProvingSystem: "sp1", Endpoint: "http://x", Status: 200}, "alice via sp1 to http://x (200)"},
		{audit.Entry{Operation: "unknown"}, ""},
	}
	for _, tt := range tests {
		if got := FormatDetails(tt.entry); got != tt.want {
			t.Errorf("FormatDetails(%s) = %q, want %q", tt.entry.Operation, got, tt.want)
		}
	}
	if got := FormatDateTime("2026-01-02T03:04:05.000000Z"); got != "2026-01-02 03:04:05" {
		t.Errorf("Unexpected formatted time %q", got)
	}
}
