package observer

import (
	"errors"
	"slices"
	"strings"
)

// Platform errors.
var (
	// ErrNotRegistered is returned by platform services when a watcher that
	// is not registered is unregistered. The observer swallows it.
	ErrNotRegistered = errors.New("watcher not registered")

	// ErrInvalidSubscription is returned when a carrier handle is requested
	// for an invalid subscription.
	ErrInvalidSubscription = errors.New("invalid subscription")
)

// Permission names a host permission.
type Permission string

// PermissionReadPhoneState allows reading telephony state.
const PermissionReadPhoneState Permission = "READ_PHONE_STATE"

// PermissionSource answers whether the host granted a permission.
type PermissionSource interface {
	IsGranted(p Permission) bool
}

// DataSubscriptionWatcher is notified when the active data subscription changes.
type DataSubscriptionWatcher interface {
	OnActiveDataSubscriptionChanged(id SubscriptionID)
}

// OverrideWatcher is notified when the override network type of one
// carrier changes. The value is the raw platform value.
type OverrideWatcher interface {
	OnOverrideNetworkTypeChanged(value int)
}

// CapabilitiesWatcher is notified when the capabilities of a network change.
type CapabilitiesWatcher interface {
	OnCapabilitiesChanged(network NetworkID, caps NetworkCapabilities)
}

// SubscriptionService is the platform telephony service.
//
// Watchers are invoked asynchronously on platform goroutines. Implementations
// must never call a watcher from inside a Register or Unregister call.
type SubscriptionService interface {
	// DefaultDataSubscriptionID returns the subscription currently carrying
	// mobile data, or InvalidSubscriptionID.
	DefaultDataSubscriptionID() SubscriptionID

	// HandleForSubscription returns a carrier handle scoped to id.
	HandleForSubscription(id SubscriptionID) (CarrierHandle, error)

	RegisterDataSubscriptionWatcher(w DataSubscriptionWatcher) error
	UnregisterDataSubscriptionWatcher(w DataSubscriptionWatcher) error
}

// CarrierHandle is a telephony handle scoped to one subscription.
type CarrierHandle interface {
	SubscriptionID() SubscriptionID
	RegisterOverrideWatcher(w OverrideWatcher) error
	UnregisterOverrideWatcher(w OverrideWatcher) error
}

// NetworkService is the platform connectivity service.
// The same asynchronous delivery rules as SubscriptionService apply.
type NetworkService interface {
	RegisterCapabilitiesWatcher(req NetworkRequest, w CapabilitiesWatcher) error
	UnregisterCapabilitiesWatcher(w CapabilitiesWatcher) error
}

// NetworkID identifies a platform network.
type NetworkID string

// Transport is a network transport type.
type Transport uint8

const (
	TransportCellular Transport = iota
	TransportWiFi
	TransportBluetooth
	TransportEthernet
	TransportVPN
)

// String returns the transport name.
func (t Transport) String() string {
	switch t {
	case TransportCellular:
		return "CELLULAR"
	case TransportWiFi:
		return "WIFI"
	case TransportBluetooth:
		return "BLUETOOTH"
	case TransportEthernet:
		return "ETHERNET"
	case TransportVPN:
		return "VPN"
	default:
		return "UNKNOWN"
	}
}

// ParseTransport parses a transport name case-insensitively.
func ParseTransport(s string) (Transport, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t := TransportCellular; t <= TransportVPN; t++ {
		if s == t.String() {
			return t, true
		}
	}
	return 0, false
}

// Capability is a network capability.
type Capability uint8

const (
	CapabilityInternet Capability = iota
	CapabilityValidated
	CapabilityNotMetered
	CapabilityTemporarilyNotMetered
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityInternet:
		return "INTERNET"
	case CapabilityValidated:
		return "VALIDATED"
	case CapabilityNotMetered:
		return "NOT_METERED"
	case CapabilityTemporarilyNotMetered:
		return "TEMPORARILY_NOT_METERED"
	default:
		return "UNKNOWN"
	}
}

// ParseCapability parses a capability name case-insensitively.
func ParseCapability(s string) (Capability, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for c := CapabilityInternet; c <= CapabilityTemporarilyNotMetered; c++ {
		if s == c.String() {
			return c, true
		}
	}
	return 0, false
}

// NetworkCapabilities is one capabilities update of a network.
type NetworkCapabilities struct {
	Transports   []Transport
	Capabilities []Capability

	LinkDownstreamKbps int
	LinkUpstreamKbps   int
}

// HasTransport reports whether the update carries transport t.
func (c NetworkCapabilities) HasTransport(t Transport) bool {
	return slices.Contains(c.Transports, t)
}

// HasCapability reports whether the update carries capability want.
func (c NetworkCapabilities) HasCapability(want Capability) bool {
	return slices.Contains(c.Capabilities, want)
}

// NetworkRequest selects the networks a capabilities watcher is interested in.
type NetworkRequest struct {
	// Capabilities that a network must all have.
	Capabilities []Capability

	// Transports of which a network must have at least one (empty = any).
	Transports []Transport
}

// DefaultCellularRequest requests validated internet-capable cellular networks.
func DefaultCellularRequest() NetworkRequest {
	return NetworkRequest{
		Capabilities: []Capability{CapabilityInternet, CapabilityValidated},
		Transports:   []Transport{TransportCellular},
	}
}

// Matches reports whether caps satisfies the request.
func (r NetworkRequest) Matches(caps NetworkCapabilities) bool {
	for _, c := range r.Capabilities {
		if !caps.HasCapability(c) {
			return false
		}
	}
	if len(r.Transports) == 0 {
		return true
	}
	for _, t := range r.Transports {
		if caps.HasTransport(t) {
			return true
		}
	}
	return false
}
