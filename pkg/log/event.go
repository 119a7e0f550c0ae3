package log

import "time"

// Event represents an observer log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies one observing session (UUID), from Start to Stop.
	SessionID string `cbor:"2,keyasint"`

	// Source is the component that produced the event.
	Source Source `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// SubscriptionID is the data subscription bound when the event was
	// captured (-1 when none).
	SubscriptionID int32 `cbor:"5,keyasint"`

	// Type-specific payload (one of these will be set).
	Lifecycle    *LifecycleEvent    `cbor:"10,keyasint,omitempty"`
	Binding      *BindingEvent      `cbor:"11,keyasint,omitempty"`
	Override     *OverrideEvent     `cbor:"12,keyasint,omitempty"`
	Capabilities *CapabilitiesEvent `cbor:"13,keyasint,omitempty"`
	Status       *StatusEvent       `cbor:"14,keyasint,omitempty"`
	Error        *ErrorEventData    `cbor:"15,keyasint,omitempty"`
}

// Source indicates which part of the observer captured the event.
type Source uint8

const (
	// SourceHost is the host lifecycle (Start/Stop callers).
	SourceHost Source = 0
	// SourcePrimary is the data-subscription watcher.
	SourcePrimary Source = 1
	// SourceSecondary is the per-carrier override watcher.
	SourceSecondary Source = 2
	// SourceCapabilities is the network-capabilities watcher.
	SourceCapabilities Source = 3
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceHost:
		return "HOST"
	case SourcePrimary:
		return "PRIMARY"
	case SourceSecondary:
		return "SECONDARY"
	case SourceCapabilities:
		return "CAPABILITIES"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryLifecycle indicates a start or stop of observation.
	CategoryLifecycle Category = 0
	// CategoryBinding indicates a secondary watcher rebinding.
	CategoryBinding Category = 1
	// CategoryOverride indicates a radio override update.
	CategoryOverride Category = 2
	// CategoryCapabilities indicates a capabilities update (applied or ignored).
	CategoryCapabilities Category = 3
	// CategoryStatus indicates a published status.
	CategoryStatus Category = 4
	// CategoryError indicates a degraded operation.
	CategoryError Category = 5
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLifecycle:
		return "LIFECYCLE"
	case CategoryBinding:
		return "BINDING"
	case CategoryOverride:
		return "OVERRIDE"
	case CategoryCapabilities:
		return "CAPABILITIES"
	case CategoryStatus:
		return "STATUS"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LifecycleEvent captures Start and Stop of the observer.
type LifecycleEvent struct {
	// Action is the lifecycle action.
	Action LifecycleAction `cbor:"1,keyasint"`

	// PermissionGranted is the permission state seen on entry.
	PermissionGranted bool `cbor:"2,keyasint"`

	// Reason explains a skipped action (e.g. "already observing").
	Reason string `cbor:"3,keyasint,omitempty"`
}

// LifecycleAction indicates what the host asked the observer to do.
type LifecycleAction uint8

const (
	// LifecycleStart indicates observation started.
	LifecycleStart LifecycleAction = 0
	// LifecycleStop indicates observation stopped.
	LifecycleStop LifecycleAction = 1
	// LifecycleDenied indicates Start ran without permission.
	LifecycleDenied LifecycleAction = 2
)

// String returns the lifecycle action name.
func (a LifecycleAction) String() string {
	switch a {
	case LifecycleStart:
		return "START"
	case LifecycleStop:
		return "STOP"
	case LifecycleDenied:
		return "DENIED"
	default:
		return "UNKNOWN"
	}
}

// BindingEvent captures a transition of the rebinding state machine.
type BindingEvent struct {
	// OldSubscriptionID is the previously bound subscription (-1 for none).
	OldSubscriptionID int32 `cbor:"1,keyasint"`

	// NewSubscriptionID is the newly bound subscription (-1 for none).
	NewSubscriptionID int32 `cbor:"2,keyasint"`

	// OldState is the previous binding state.
	OldState string `cbor:"3,keyasint,omitempty"`

	// NewState is the new binding state.
	NewState string `cbor:"4,keyasint"`
}

// OverrideEvent captures a radio override update from the secondary watcher.
type OverrideEvent struct {
	// Raw is the platform value as delivered.
	Raw int `cbor:"1,keyasint"`

	// Mapped is the mapped override type name.
	Mapped string `cbor:"2,keyasint"`
}

// CapabilitiesEvent captures a capabilities update.
type CapabilitiesEvent struct {
	// Network is the platform network identifier.
	Network string `cbor:"1,keyasint,omitempty"`

	// Transports lists the transports carried by the update.
	Transports []string `cbor:"2,keyasint,omitempty"`

	// Ignored is true when the update lacked the cellular transport.
	Ignored bool `cbor:"3,keyasint,omitempty"`

	TemporarilyNotMetered bool `cbor:"4,keyasint,omitempty"`
	NotMetered            bool `cbor:"5,keyasint,omitempty"`
	DownstreamKbps        int  `cbor:"6,keyasint,omitempty"`
	UpstreamKbps          int  `cbor:"7,keyasint,omitempty"`
}

// StatusEvent captures a published status.
type StatusEvent struct {
	// Sequence is the monotonically increasing publish number.
	Sequence uint64 `cbor:"1,keyasint"`

	OverrideType          string `cbor:"2,keyasint"`
	HasPermission         bool   `cbor:"3,keyasint"`
	Observing             bool   `cbor:"4,keyasint"`
	TemporarilyNotMetered bool   `cbor:"5,keyasint"`
	NotMetered            bool   `cbor:"6,keyasint"`
	DownstreamKbps        int    `cbor:"7,keyasint"`
	UpstreamKbps          int    `cbor:"8,keyasint"`
}

// ErrorEventData captures a degraded operation.
type ErrorEventData struct {
	// Source where the error occurred.
	Source Source `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
