package commands

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cellwatch/cellwatch-go/pkg/log"
)

// createTestLogFile writes events to a temporary log file.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.clog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func TestExportToJSONL(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	events := []log.Event{
		{
			Timestamp:      ts,
			SessionID:      "abc12345",
			Source:         log.SourceHost,
			Category:       log.CategoryLifecycle,
			SubscriptionID: 1,
			Lifecycle:      &log.LifecycleEvent{Action: log.LifecycleStart, PermissionGranted: true},
		},
		{
			Timestamp:      ts.Add(time.Millisecond),
			SessionID:      "abc12345",
			Source:         log.SourceSecondary,
			Category:       log.CategoryOverride,
			SubscriptionID: 1,
			Override:       &log.OverrideEvent{Raw: 3, Mapped: "NR_NSA"},
		},
	}

	path := createTestLogFile(t, events)
	outPath := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var decoded log.Event
	if err := json.Unmarshal([]byte(lines[1]), &decoded); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if decoded.Override == nil || decoded.Override.Mapped != "NR_NSA" {
		t.Errorf("expected override payload, got %+v", decoded.Override)
	}
	if decoded.SessionID != "abc12345" {
		t.Errorf("expected session abc12345, got %s", decoded.SessionID)
	}
}

func TestExportToCSV(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	events := []log.Event{
		{
			Timestamp:      ts,
			SessionID:      "sess-1",
			Source:         log.SourcePrimary,
			Category:       log.CategoryBinding,
			SubscriptionID: 2,
			Binding:        &log.BindingEvent{OldSubscriptionID: 1, NewSubscriptionID: 2, NewState: "BOUND"},
		},
		{
			Timestamp:      ts,
			SessionID:      "sess-1",
			Source:         log.SourceCapabilities,
			Category:       log.CategoryCapabilities,
			SubscriptionID: 2,
			Capabilities:   &log.CapabilitiesEvent{Network: "wlan0", Transports: []string{"WIFI"}, Ignored: true},
		},
	}

	path := createTestLogFile(t, events)
	outPath := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "timestamp" {
		t.Errorf("expected header row, got %v", records[0])
	}
	if records[1][2] != "PRIMARY" || records[1][5] != "1->2" {
		t.Errorf("unexpected binding row: %v", records[1])
	}
	if records[2][4] != "2" || records[2][5] != "ignored" {
		t.Errorf("unexpected capabilities row: %v", records[2])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, nil)

	err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out.xml"))
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExportMissingFile(t *testing.T) {
	if err := RunExport(filepath.Join(t.TempDir(), "missing.clog"), "jsonl", ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}
