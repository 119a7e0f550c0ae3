package observer

import "strconv"

// SubscriptionID identifies a SIM / data subscription slot.
type SubscriptionID int32

// InvalidSubscriptionID means there is no active mobile data subscription.
const InvalidSubscriptionID SubscriptionID = -1

// Valid reports whether id names a real subscription.
// Every negative value is treated as invalid.
func (id SubscriptionID) Valid() bool {
	return id >= 0
}

// normalize folds every invalid value onto InvalidSubscriptionID so that
// equality checks treat them as the same subscription.
func (id SubscriptionID) normalize() SubscriptionID {
	if !id.Valid() {
		return InvalidSubscriptionID
	}
	return id
}

// String returns the decimal id or "INVALID".
func (id SubscriptionID) String() string {
	if !id.Valid() {
		return "INVALID"
	}
	return strconv.Itoa(int(id))
}

// RadioOverrideType refines the basic radio generation (e.g. LTE that is
// actually NR-assisted).
type RadioOverrideType uint8

const (
	// OverrideNone means no override is in effect.
	OverrideNone RadioOverrideType = iota

	// OverrideLTECA is LTE with carrier aggregation.
	OverrideLTECA

	// OverrideLTEAdvancedPro is LTE Advanced Pro.
	OverrideLTEAdvancedPro

	// OverrideNRNSA is 5G non-standalone.
	OverrideNRNSA

	// OverrideNRNSAMmWave is 5G non-standalone on millimeter wave.
	OverrideNRNSAMmWave

	// OverrideUnknown is any platform value this package does not know.
	OverrideUnknown
)

// String returns the override type name.
func (t RadioOverrideType) String() string {
	switch t {
	case OverrideNone:
		return "NONE"
	case OverrideLTECA:
		return "LTE_CA"
	case OverrideLTEAdvancedPro:
		return "LTE_ADVANCED_PRO"
	case OverrideNRNSA:
		return "NR_NSA"
	case OverrideNRNSAMmWave:
		return "NR_NSA_MMWAVE"
	default:
		return "UNKNOWN"
	}
}

// Label returns the short display label shown to users.
func (t RadioOverrideType) Label() string {
	switch t {
	case OverrideNone:
		return "NONE"
	case OverrideLTECA:
		return "LTE-CA"
	case OverrideLTEAdvancedPro:
		return "LTE-ADV-PRO"
	case OverrideNRNSA:
		return "NR-NSA"
	case OverrideNRNSAMmWave:
		return "NR-NSA-MMWAVE"
	default:
		return "-"
	}
}

// CapabilitySnapshot holds the metered flags and link bandwidth of the
// active cellular network. The zero value is the state before any cellular
// capabilities update was seen.
type CapabilitySnapshot struct {
	TemporarilyNotMetered bool
	NotMetered            bool

	// DownstreamKbps is the estimated downstream bandwidth (>= 0).
	DownstreamKbps int

	// UpstreamKbps is the estimated upstream bandwidth (>= 0).
	UpstreamKbps int
}

// Status is the published observer snapshot. It is a value; copies never
// change after publication.
type Status struct {
	// OverrideType is the radio override of the bound subscription.
	OverrideType RadioOverrideType

	// Capabilities of the active cellular network.
	Capabilities CapabilitySnapshot

	// HasPermission is false when observation was refused because the
	// read-phone-state permission is missing.
	HasPermission bool

	// DataSubscription is the subscription the override watcher is bound to.
	DataSubscription SubscriptionID
}

// initialStatus is the status before anything was observed.
func initialStatus() Status {
	return Status{DataSubscription: InvalidSubscriptionID}
}

// State is the state of the rebinding state machine.
type State uint8

const (
	// StateUnbound indicates no override watcher is attached.
	StateUnbound State = iota

	// StateBound indicates an override watcher is attached to a subscription.
	StateBound
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnbound:
		return "UNBOUND"
	case StateBound:
		return "BOUND"
	default:
		return "UNKNOWN"
	}
}
