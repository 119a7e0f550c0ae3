package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func decodeSlogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func newTestAdapter(buf *bytes.Buffer) *SlogAdapter {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogAdapter(slog.New(handler))
}

func TestSlogAdapterLogsBindingEvent(t *testing.T) {
	var buf bytes.Buffer
	adapter := newTestAdapter(&buf)

	adapter.Log(Event{
		Timestamp:      time.Now(),
		SessionID:      "session-1",
		Source:         SourcePrimary,
		Category:       CategoryBinding,
		SubscriptionID: 7,
		Binding: &BindingEvent{
			OldSubscriptionID: -1,
			NewSubscriptionID: 7,
			OldState:          "UNBOUND",
			NewState:          "BOUND",
		},
	})

	entry := decodeSlogLine(t, &buf)
	if entry["session_id"] != "session-1" {
		t.Errorf("session_id: got %v", entry["session_id"])
	}
	if entry["source"] != "PRIMARY" {
		t.Errorf("source: got %v, want PRIMARY", entry["source"])
	}
	if entry["new_sub_id"] != float64(7) {
		t.Errorf("new_sub_id: got %v, want 7", entry["new_sub_id"])
	}
	if entry["new_state"] != "BOUND" {
		t.Errorf("new_state: got %v, want BOUND", entry["new_state"])
	}
}

func TestSlogAdapterLogsIgnoredCapabilities(t *testing.T) {
	var buf bytes.Buffer
	adapter := newTestAdapter(&buf)

	adapter.Log(Event{
		Timestamp: time.Now(),
		Source:    SourceCapabilities,
		Category:  CategoryCapabilities,
		Capabilities: &CapabilitiesEvent{
			Network:    "net-2",
			Transports: []string{"WIFI"},
			Ignored:    true,
		},
	})

	entry := decodeSlogLine(t, &buf)
	if entry["ignored"] != true {
		t.Errorf("ignored: got %v, want true", entry["ignored"])
	}
	if _, ok := entry["down_kbps"]; ok {
		t.Error("ignored update should not log bandwidth")
	}
}

func TestSlogAdapterLogsError(t *testing.T) {
	var buf bytes.Buffer
	adapter := newTestAdapter(&buf)

	adapter.Log(Event{
		Timestamp: time.Now(),
		Category:  CategoryError,
		Error: &ErrorEventData{
			Source:  SourceSecondary,
			Message: "handle failed",
			Context: "bind",
		},
	})

	entry := decodeSlogLine(t, &buf)
	if entry["error_source"] != "SECONDARY" {
		t.Errorf("error_source: got %v", entry["error_source"])
	}
	if entry["error_msg"] != "handle failed" {
		t.Errorf("error_msg: got %v", entry["error_msg"])
	}
}
