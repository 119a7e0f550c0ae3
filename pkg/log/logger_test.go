package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		SessionID: "test-session",
		Source:    SourceHost,
		Category:  CategoryLifecycle,
	}
	logger.Log(event)

	event.Lifecycle = &LifecycleEvent{Action: LifecycleStart, PermissionGranted: true}
	logger.Log(event)

	event.Lifecycle = nil
	event.Binding = &BindingEvent{OldSubscriptionID: -1, NewSubscriptionID: 7, NewState: "BOUND"}
	logger.Log(event)

	event.Binding = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"SourceHost", SourceHost.String(), "HOST"},
		{"SourcePrimary", SourcePrimary.String(), "PRIMARY"},
		{"SourceSecondary", SourceSecondary.String(), "SECONDARY"},
		{"SourceCapabilities", SourceCapabilities.String(), "CAPABILITIES"},
		{"SourceUnknown", Source(99).String(), "UNKNOWN"},
		{"CategoryBinding", CategoryBinding.String(), "BINDING"},
		{"CategoryStatus", CategoryStatus.String(), "STATUS"},
		{"CategoryUnknown", Category(99).String(), "UNKNOWN"},
		{"LifecycleDenied", LifecycleDenied.String(), "DENIED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
