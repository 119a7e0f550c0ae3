package simulator

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
)

// SIMConfig describes one simulated SIM.
type SIMConfig struct {
	ID observer.SubscriptionID

	// Override is the initial platform override value.
	Override int
}

// NetworkConfig describes one simulated network.
type NetworkConfig struct {
	ID           observer.NetworkID
	Capabilities observer.NetworkCapabilities
}

// Config configures a Platform.
type Config struct {
	// Granted lists the permissions granted at creation.
	Granted []observer.Permission

	// SIMs are the installed SIMs.
	SIMs []SIMConfig

	// DefaultData is the subscription carrying data at creation.
	DefaultData observer.SubscriptionID

	// Networks are the networks known at creation.
	Networks []NetworkConfig

	// StrictRequests delivers capability updates only to watchers whose
	// NetworkRequest matches. When false every update goes to every
	// capabilities watcher.
	StrictRequests bool

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with no permission, no SIM and no network.
func DefaultConfig() Config {
	return Config{DefaultData: observer.InvalidSubscriptionID}
}

type sim struct {
	id       observer.SubscriptionID
	override int
}

type overrideRegistration struct {
	subID   observer.SubscriptionID
	watcher observer.OverrideWatcher
}

type capabilitiesRegistration struct {
	request observer.NetworkRequest
	watcher observer.CapabilitiesWatcher
}

// Platform is a simulated telephony and connectivity platform.
type Platform struct {
	mu sync.Mutex

	granted     map[observer.Permission]bool
	sims        map[observer.SubscriptionID]*sim
	defaultData observer.SubscriptionID
	networks    map[observer.NetworkID]observer.NetworkCapabilities
	strict      bool

	primary      []observer.DataSubscriptionWatcher
	overrides    []overrideRegistration
	capabilities []capabilitiesRegistration

	// maxOverrides is the highest number of override watchers registered
	// at the same time.
	maxOverrides int

	dispatcher *dispatcher
	logger     *slog.Logger
}

// New creates a Platform and starts its dispatcher.
func New(config Config) *Platform {
	p := &Platform{
		granted:     make(map[observer.Permission]bool),
		sims:        make(map[observer.SubscriptionID]*sim),
		defaultData: observer.InvalidSubscriptionID,
		networks:    make(map[observer.NetworkID]observer.NetworkCapabilities),
		strict:      config.StrictRequests,
		dispatcher:  newDispatcher(),
		logger:      config.Logger,
	}
	for _, perm := range config.Granted {
		p.granted[perm] = true
	}
	for _, s := range config.SIMs {
		p.sims[s.ID] = &sim{id: s.ID, override: s.Override}
	}
	if config.DefaultData.Valid() {
		p.defaultData = config.DefaultData
	}
	for _, n := range config.Networks {
		p.networks[n.ID] = n.Capabilities
	}
	return p
}

// Close stops the dispatcher after draining queued deliveries.
func (p *Platform) Close() {
	p.dispatcher.close()
}

// Sync waits until no delivery is pending. Deliveries queued by watchers
// while Sync waits are waited for too.
func (p *Platform) Sync() {
	p.dispatcher.sync()
}

// Grant grants a permission.
func (p *Platform) Grant(perm observer.Permission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.granted[perm] = true
}

// Revoke revokes a permission. Registered watchers keep running, as on a
// real platform; the observer finds out at its next Start or Stop.
func (p *Platform) Revoke(perm observer.Permission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.granted, perm)
}

// IsGranted implements observer.PermissionSource.
func (p *Platform) IsGranted(perm observer.Permission) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.granted[perm]
}

// AddSIM installs a SIM. Installing an existing SIM resets its override.
func (p *Platform) AddSIM(id observer.SubscriptionID, override int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sims[id] = &sim{id: id, override: override}
}

// SetDefaultData makes id the data subscription and notifies the
// data-subscription watchers. Use InvalidSubscriptionID for "no data SIM".
func (p *Platform) SetDefaultData(id observer.SubscriptionID) {
	if !id.Valid() {
		id = observer.InvalidSubscriptionID
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.defaultData = id
	p.debugLog("default data subscription changed", "subId", id)
	for _, w := range p.primary {
		p.deliverPrimary(w, id)
	}
}

// SetOverride changes the override value of a SIM and notifies the
// override watchers registered on handles for that SIM.
func (p *Platform) SetOverride(id observer.SubscriptionID, value int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sims[id]
	if !ok {
		s = &sim{id: id}
		p.sims[id] = s
	}
	s.override = value
	p.debugLog("override changed", "subId", id, "value", value)
	for _, r := range p.overrides {
		if r.subID == id {
			p.deliverOverride(r.watcher, value)
		}
	}
}

// UpdateNetwork records new capabilities for a network and notifies the
// capabilities watchers.
func (p *Platform) UpdateNetwork(id observer.NetworkID, caps observer.NetworkCapabilities) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.networks[id] = caps
	p.debugLog("network capabilities changed", "network", id)
	for _, r := range p.capabilities {
		if !p.strict || r.request.Matches(caps) {
			p.deliverCapabilities(r.watcher, id, caps)
		}
	}
}

// DefaultDataSubscriptionID implements observer.SubscriptionService.
func (p *Platform) DefaultDataSubscriptionID() observer.SubscriptionID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.defaultData
}

// HandleForSubscription implements observer.SubscriptionService.
func (p *Platform) HandleForSubscription(id observer.SubscriptionID) (observer.CarrierHandle, error) {
	if !id.Valid() {
		return nil, observer.ErrInvalidSubscription
	}
	return &carrier{p: p, id: id}, nil
}

// RegisterDataSubscriptionWatcher implements observer.SubscriptionService.
func (p *Platform) RegisterDataSubscriptionWatcher(w observer.DataSubscriptionWatcher) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !slices.Contains(p.primary, w) {
		p.primary = append(p.primary, w)
	}
	p.deliverPrimary(w, p.defaultData)
	return nil
}

// UnregisterDataSubscriptionWatcher implements observer.SubscriptionService.
func (p *Platform) UnregisterDataSubscriptionWatcher(w observer.DataSubscriptionWatcher) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := slices.Index(p.primary, w)
	if i < 0 {
		return observer.ErrNotRegistered
	}
	p.primary = slices.Delete(p.primary, i, i+1)
	return nil
}

// RegisterCapabilitiesWatcher implements observer.NetworkService.
func (p *Platform) RegisterCapabilitiesWatcher(req observer.NetworkRequest, w observer.CapabilitiesWatcher) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.capabilityIndexLocked(w) < 0 {
		p.capabilities = append(p.capabilities, capabilitiesRegistration{request: req, watcher: w})
	}

	ids := make([]observer.NetworkID, 0, len(p.networks))
	for id, caps := range p.networks {
		if req.Matches(caps) {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, cmp.Compare[observer.NetworkID])
	for _, id := range ids {
		p.deliverCapabilities(w, id, p.networks[id])
	}
	return nil
}

// UnregisterCapabilitiesWatcher implements observer.NetworkService.
func (p *Platform) UnregisterCapabilitiesWatcher(w observer.CapabilitiesWatcher) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.capabilityIndexLocked(w)
	if i < 0 {
		return observer.ErrNotRegistered
	}
	p.capabilities = slices.Delete(p.capabilities, i, i+1)
	return nil
}

// PrimaryWatcherCount returns the number of registered data-subscription watchers.
func (p *Platform) PrimaryWatcherCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.primary)
}

// CapabilitiesWatcherCount returns the number of registered capabilities watchers.
func (p *Platform) CapabilitiesWatcherCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.capabilities)
}

// OverrideWatcherCount returns the number of registered override watchers
// across all SIMs.
func (p *Platform) OverrideWatcherCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.overrides)
}

// OverrideWatchersFor returns the number of override watchers registered
// on handles for id.
func (p *Platform) OverrideWatchersFor(id observer.SubscriptionID) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, r := range p.overrides {
		if r.subID == id {
			n++
		}
	}
	return n
}

// MaxOverrideWatchers returns the highest number of override watchers that
// were registered at the same time.
func (p *Platform) MaxOverrideWatchers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxOverrides
}

func (p *Platform) capabilityIndexLocked(w observer.CapabilitiesWatcher) int {
	return slices.IndexFunc(p.capabilities, func(r capabilitiesRegistration) bool {
		return r.watcher == w
	})
}

func (p *Platform) overrideIndexLocked(id observer.SubscriptionID, w observer.OverrideWatcher) int {
	return slices.IndexFunc(p.overrides, func(r overrideRegistration) bool {
		return r.subID == id && r.watcher == w
	})
}

func (p *Platform) registerOverride(id observer.SubscriptionID, w observer.OverrideWatcher) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.overrideIndexLocked(id, w) < 0 {
		p.overrides = append(p.overrides, overrideRegistration{subID: id, watcher: w})
		p.maxOverrides = max(p.maxOverrides, len(p.overrides))
	}
	current := observer.PlatformOverrideNone
	if s, ok := p.sims[id]; ok {
		current = s.override
	}
	p.deliverOverride(w, current)
	return nil
}

func (p *Platform) unregisterOverride(id observer.SubscriptionID, w observer.OverrideWatcher) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.overrideIndexLocked(id, w)
	if i < 0 {
		return observer.ErrNotRegistered
	}
	p.overrides = slices.Delete(p.overrides, i, i+1)
	return nil
}

// The deliver helpers are called with p.mu held so deliveries are queued in
// the order the changes were made. They re-check the registration on the
// dispatcher, so a watcher removed before its turn is not called.

func (p *Platform) deliverPrimary(w observer.DataSubscriptionWatcher, id observer.SubscriptionID) {
	p.dispatcher.post(func() {
		p.mu.Lock()
		registered := slices.Contains(p.primary, w)
		p.mu.Unlock()
		if registered {
			w.OnActiveDataSubscriptionChanged(id)
		}
	})
}

func (p *Platform) deliverOverride(w observer.OverrideWatcher, value int) {
	p.dispatcher.post(func() {
		p.mu.Lock()
		registered := slices.ContainsFunc(p.overrides, func(r overrideRegistration) bool {
			return r.watcher == w
		})
		p.mu.Unlock()
		if registered {
			w.OnOverrideNetworkTypeChanged(value)
		}
	})
}

func (p *Platform) deliverCapabilities(w observer.CapabilitiesWatcher, id observer.NetworkID, caps observer.NetworkCapabilities) {
	p.dispatcher.post(func() {
		p.mu.Lock()
		registered := p.capabilityIndexLocked(w) >= 0
		p.mu.Unlock()
		if registered {
			w.OnCapabilitiesChanged(id, caps)
		}
	})
}

// debugLog logs a debug message if a logger is configured.
func (p *Platform) debugLog(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

// carrier is a CarrierHandle scoped to one subscription.
type carrier struct {
	p  *Platform
	id observer.SubscriptionID
}

func (c *carrier) SubscriptionID() observer.SubscriptionID { return c.id }

func (c *carrier) RegisterOverrideWatcher(w observer.OverrideWatcher) error {
	return c.p.registerOverride(c.id, w)
}

func (c *carrier) UnregisterOverrideWatcher(w observer.OverrideWatcher) error {
	return c.p.unregisterOverride(c.id, w)
}

// Compile-time interface satisfaction checks.
var (
	_ observer.PermissionSource    = (*Platform)(nil)
	_ observer.SubscriptionService = (*Platform)(nil)
	_ observer.NetworkService      = (*Platform)(nil)
	_ observer.CarrierHandle       = (*carrier)(nil)
)
