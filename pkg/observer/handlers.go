package observer

// The handlers are what the observer registers with the platform. They
// carry only their identity (session generation, bound subscription) and
// forward to the observer, which owns all mutable state.

type subscriptionHandler struct {
	o          *Observer
	generation uint64
}

func (h *subscriptionHandler) OnActiveDataSubscriptionChanged(id SubscriptionID) {
	h.o.handleDataSubscription(h, id)
}

type overrideHandler struct {
	o          *Observer
	generation uint64
	subID      SubscriptionID
}

func (h *overrideHandler) OnOverrideNetworkTypeChanged(value int) {
	h.o.handleOverride(h, value)
}

type capabilitiesHandler struct {
	o          *Observer
	generation uint64
}

func (h *capabilitiesHandler) OnCapabilitiesChanged(network NetworkID, caps NetworkCapabilities) {
	h.o.handleCapabilities(h, network, caps)
}

// Compile-time interface satisfaction checks.
var (
	_ DataSubscriptionWatcher = (*subscriptionHandler)(nil)
	_ OverrideWatcher         = (*overrideHandler)(nil)
	_ CapabilitiesWatcher     = (*capabilitiesHandler)(nil)
)
