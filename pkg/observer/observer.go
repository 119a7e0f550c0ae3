package observer

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/cellwatch/cellwatch-go/pkg/log"
)

// StatusListener receives every published Status, one call at a time and
// in publication order. It is never called with the observer's state lock
// held, so it may call Status and Stop, but not Start.
type StatusListener interface {
	OnStatusChanged(status Status)
}

// StatusListenerFunc adapts a function to StatusListener.
type StatusListenerFunc func(Status)

// OnStatusChanged calls f(status).
func (f StatusListenerFunc) OnStatusChanged(status Status) { f(status) }

// Observer coordinates the data-subscription, override and capabilities
// watchers and publishes the combined Status.
type Observer struct {
	mu sync.Mutex

	// Collaborators
	permissions   PermissionSource
	subscriptions SubscriptionService
	network       NetworkService
	request       NetworkRequest

	logger *slog.Logger
	events log.Logger

	// Session. generation changes on every Start and Stop so that handlers
	// of a finished session can recognise themselves as stale.
	observing  bool
	generation uint64
	sessionID  string

	// Registered watchers (nil when not registered)
	primary      *subscriptionHandler
	capabilities *capabilitiesHandler

	// Rebinding state. carrier and secondary are non-nil iff subID is valid.
	subID     SubscriptionID
	carrier   CarrierHandle
	secondary *overrideHandler

	// Status fields
	override      RadioOverrideType
	caps          CapabilitySnapshot
	hasPermission bool

	listener StatusListener

	// Publication. outbox holds published statuses not yet handed to a
	// listener, in sequence order; it is guarded by mu.
	seq     uint64
	current atomic.Pointer[Status]
	outbox  []pending

	// deliverMu serializes listener calls.
	deliverMu sync.Mutex
}

// pending is a published status waiting to be handed to the listener.
type pending struct {
	status   Status
	listener StatusListener
}

// New creates an Observer. listener may be nil and set later.
func New(config Config, listener StatusListener) (*Observer, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.EventLogger == nil {
		config.EventLogger = log.NoopLogger{}
	}
	if len(config.Request.Capabilities) == 0 && len(config.Request.Transports) == 0 {
		config.Request = DefaultCellularRequest()
	}

	o := &Observer{
		permissions:   config.Permissions,
		subscriptions: config.Subscriptions,
		network:       config.Network,
		request:       config.Request,
		logger:        config.Logger,
		events:        config.EventLogger,
		subID:         InvalidSubscriptionID,
		listener:      listener,
	}
	initial := initialStatus()
	o.current.Store(&initial)
	return o, nil
}

// SetListener replaces the status listener.
func (o *Observer) SetListener(l StatusListener) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listener = l
}

// OnStatusChanged sets a callback for published statuses.
func (o *Observer) OnStatusChanged(fn func(Status)) {
	if fn == nil {
		o.SetListener(nil)
		return
	}
	o.SetListener(StatusListenerFunc(fn))
}

// Status returns the latest published status.
func (o *Observer) Status() Status {
	return *o.current.Load()
}

// Observing reports whether watchers are attached.
func (o *Observer) Observing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.observing
}

// State returns the rebinding state.
func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stateLocked()
}

// BoundSubscription returns the subscription the override watcher is
// attached to, or InvalidSubscriptionID.
func (o *Observer) BoundSubscription() SubscriptionID {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.secondary == nil {
		return InvalidSubscriptionID
	}
	return o.subID
}

// SessionID returns the id of the current or last observing session.
func (o *Observer) SessionID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessionID
}

// Start begins observation. Without the read-phone-state permission it
// publishes a status with HasPermission=false and attaches nothing.
// Calling Start while observing does nothing.
func (o *Observer) Start() {
	granted := o.permissions.IsGranted(PermissionReadPhoneState)

	o.mu.Lock()

	if o.observing {
		o.emitLifecycle(log.LifecycleStart, granted, "already observing")
		o.mu.Unlock()
		return
	}

	if !granted {
		o.hasPermission = false
		o.emitLifecycle(log.LifecycleDenied, false, "permission not granted")
		o.debugLog("start refused: permission not granted")
		o.publishLocked()
		o.mu.Unlock()
		o.deliver()
		return
	}

	o.generation++
	o.sessionID = uuid.New().String()
	o.observing = true
	o.hasPermission = true
	o.override = OverrideNone
	o.subID = InvalidSubscriptionID

	// The default data SIM may have changed while we were stopped.
	o.rebindLocked(o.subscriptions.DefaultDataSubscriptionID().normalize(), log.SourceHost)

	primary := &subscriptionHandler{o: o, generation: o.generation}
	if err := o.subscriptions.RegisterDataSubscriptionWatcher(primary); err != nil {
		o.emitError(log.SourcePrimary, err, "register data subscription watcher")
	} else {
		o.primary = primary
	}

	capabilities := &capabilitiesHandler{o: o, generation: o.generation}
	if err := o.network.RegisterCapabilitiesWatcher(o.request, capabilities); err != nil {
		o.emitError(log.SourceCapabilities, err, "register capabilities watcher")
	} else {
		o.capabilities = capabilities
	}

	o.emitLifecycle(log.LifecycleStart, true, "")
	o.debugLog("observer started", "session", o.sessionID, "subId", o.subID)

	o.publishLocked()
	o.mu.Unlock()
	o.deliver()
}

// Stop detaches all watchers. It is safe to call at any time, any number
// of times. Watchers that turn out not to be registered are ignored.
func (o *Observer) Stop() {
	granted := o.permissions.IsGranted(PermissionReadPhoneState)

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.observing {
		o.debugLog("stop ignored: not observing")
		return
	}

	// Invalidate handlers of this session before detaching them, so that a
	// callback racing with Stop is dropped.
	o.generation++
	o.observing = false

	if o.primary != nil {
		o.unregister(log.SourcePrimary, o.subscriptions.UnregisterDataSubscriptionWatcher(o.primary))
		o.primary = nil
	}
	if o.capabilities != nil {
		o.unregister(log.SourceCapabilities, o.network.UnregisterCapabilitiesWatcher(o.capabilities))
		o.capabilities = nil
	}
	o.detachSecondaryLocked()
	o.subID = InvalidSubscriptionID
	o.override = OverrideNone

	o.emitLifecycle(log.LifecycleStop, granted, "")
	o.debugLog("observer stopped", "session", o.sessionID)
}

// handleDataSubscription is the primary watcher callback.
func (o *Observer) handleDataSubscription(h *subscriptionHandler, id SubscriptionID) {
	id = id.normalize()

	o.mu.Lock()
	if !o.observing || h.generation != o.generation {
		o.mu.Unlock()
		o.debugLog("dropping stale data subscription event", "subId", id)
		return
	}
	if id == o.subID {
		o.mu.Unlock()
		return
	}

	o.rebindLocked(id, log.SourcePrimary)
	o.publishLocked()
	o.mu.Unlock()
	o.deliver()
}

// handleOverride is the secondary watcher callback.
func (o *Observer) handleOverride(h *overrideHandler, value int) {
	o.mu.Lock()
	if !o.observing || h.generation != o.generation || h != o.secondary {
		o.mu.Unlock()
		o.debugLog("dropping stale override event", "subId", h.subID, "value", value)
		return
	}

	o.override = MapOverrideType(value)
	o.emit(log.Event{
		Source:   log.SourceSecondary,
		Category: log.CategoryOverride,
		Override: &log.OverrideEvent{Raw: value, Mapped: o.override.String()},
	})

	o.publishLocked()
	o.mu.Unlock()
	o.deliver()
}

// handleCapabilities is the capabilities watcher callback.
func (o *Observer) handleCapabilities(h *capabilitiesHandler, network NetworkID, caps NetworkCapabilities) {
	o.mu.Lock()
	if !o.observing || h.generation != o.generation {
		o.mu.Unlock()
		o.debugLog("dropping stale capabilities event", "network", network)
		return
	}

	ev := &log.CapabilitiesEvent{
		Network:    string(network),
		Transports: transportNames(caps.Transports),
	}

	// Only cellular updates feed the cellular metrics.
	if !caps.HasTransport(TransportCellular) {
		ev.Ignored = true
		o.emit(log.Event{Source: log.SourceCapabilities, Category: log.CategoryCapabilities, Capabilities: ev})
		o.mu.Unlock()
		return
	}

	o.caps = CapabilitySnapshot{
		TemporarilyNotMetered: caps.HasCapability(CapabilityTemporarilyNotMetered),
		NotMetered:            caps.HasCapability(CapabilityNotMetered),
		DownstreamKbps:        max(caps.LinkDownstreamKbps, 0),
		UpstreamKbps:          max(caps.LinkUpstreamKbps, 0),
	}
	ev.TemporarilyNotMetered = o.caps.TemporarilyNotMetered
	ev.NotMetered = o.caps.NotMetered
	ev.DownstreamKbps = o.caps.DownstreamKbps
	ev.UpstreamKbps = o.caps.UpstreamKbps
	o.emit(log.Event{Source: log.SourceCapabilities, Category: log.CategoryCapabilities, Capabilities: ev})

	o.publishLocked()
	o.mu.Unlock()
	o.deliver()
}

// rebindLocked moves the override watcher to newID. The old watcher is
// detached before the new one is attached. If the new handle cannot be
// created or attached the observer ends up unbound.
func (o *Observer) rebindLocked(newID SubscriptionID, source log.Source) {
	oldID, oldState := o.subID, o.stateLocked()

	o.detachSecondaryLocked()

	if newID.Valid() {
		if err := o.attachSecondaryLocked(newID); err != nil {
			o.emitError(source, err, "bind subscription "+newID.String())
			newID = InvalidSubscriptionID
		}
	}

	o.subID = newID
	if !newID.Valid() {
		o.override = OverrideNone
	}

	o.emit(log.Event{
		Source:   source,
		Category: log.CategoryBinding,
		Binding: &log.BindingEvent{
			OldSubscriptionID: int32(oldID),
			NewSubscriptionID: int32(newID),
			OldState:          oldState.String(),
			NewState:          o.stateLocked().String(),
		},
	})
	o.debugLog("rebound override watcher", "from", oldID, "to", newID)
}

func (o *Observer) attachSecondaryLocked(id SubscriptionID) error {
	handle, err := o.subscriptions.HandleForSubscription(id)
	if err != nil {
		return err
	}
	if handle == nil {
		return ErrInvalidSubscription
	}

	w := &overrideHandler{o: o, generation: o.generation, subID: id}
	if err := handle.RegisterOverrideWatcher(w); err != nil {
		return err
	}

	o.carrier = handle
	o.secondary = w
	return nil
}

func (o *Observer) detachSecondaryLocked() {
	if o.carrier == nil {
		return
	}
	o.unregister(log.SourceSecondary, o.carrier.UnregisterOverrideWatcher(o.secondary))
	o.carrier = nil
	o.secondary = nil
}

func (o *Observer) stateLocked() State {
	if o.secondary != nil {
		return StateBound
	}
	return StateUnbound
}

// unregister swallows unregistration errors. Unregistering something that
// is not registered is expected during defensive teardown.
func (o *Observer) unregister(source log.Source, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrNotRegistered) {
		o.debugLog("watcher was not registered", "source", source.String())
		return
	}
	o.emitError(source, err, "unregister watcher")
}

// publishLocked builds and stores the next status and queues it for the
// listener. The caller must call deliver after releasing mu.
func (o *Observer) publishLocked() {
	status := Status{
		OverrideType:     o.override,
		Capabilities:     o.caps,
		HasPermission:    o.hasPermission,
		DataSubscription: o.subID,
	}
	o.seq++
	o.current.Store(&status)

	o.emit(log.Event{
		Source:   log.SourceHost,
		Category: log.CategoryStatus,
		Status: &log.StatusEvent{
			Sequence:              o.seq,
			OverrideType:          status.OverrideType.String(),
			HasPermission:         status.HasPermission,
			Observing:             o.observing,
			TemporarilyNotMetered: status.Capabilities.TemporarilyNotMetered,
			NotMetered:            status.Capabilities.NotMetered,
			DownstreamKbps:        status.Capabilities.DownstreamKbps,
			UpstreamKbps:          status.Capabilities.UpstreamKbps,
		},
	})

	if o.listener != nil {
		o.outbox = append(o.outbox, pending{status: status, listener: o.listener})
	}
}

// deliver hands queued statuses to their listener in publication order.
// Whichever goroutine holds deliverMu drains statuses published by others
// as well, so no status is skipped and none overtakes an older one.
func (o *Observer) deliver() {
	o.deliverMu.Lock()
	defer o.deliverMu.Unlock()

	for {
		o.mu.Lock()
		batch := o.outbox
		o.outbox = nil
		o.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, p := range batch {
			p.listener.OnStatusChanged(p.status)
		}
	}
}

func (o *Observer) emit(event log.Event) {
	event.Timestamp = time.Now()
	event.SessionID = o.sessionID
	event.SubscriptionID = int32(o.subID)
	o.events.Log(event)
}

func (o *Observer) emitLifecycle(action log.LifecycleAction, granted bool, reason string) {
	o.emit(log.Event{
		Source:   log.SourceHost,
		Category: log.CategoryLifecycle,
		Lifecycle: &log.LifecycleEvent{
			Action:            action,
			PermissionGranted: granted,
			Reason:            reason,
		},
	})
}

func (o *Observer) emitError(source log.Source, err error, context string) {
	o.emit(log.Event{
		Source:   source,
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Source:  source,
			Message: err.Error(),
			Context: context,
		},
	})
	if o.logger != nil {
		o.logger.Warn("observer degraded", "source", source.String(), "context", context, "error", err)
	}
}

// debugLog logs a debug message if a logger is configured.
func (o *Observer) debugLog(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

func transportNames(ts []Transport) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return names
}
