package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
)

// Lifecycle errors.
var (
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrDestroyed         = errors.New("host destroyed")
)

// State is the host lifecycle state.
type State uint8

const (
	// StateInitialized - host constructed, Create not called yet.
	StateInitialized State = iota

	// StateCreated - host created, not in the foreground.
	StateCreated

	// StateResumed - host in the foreground, observer running.
	StateResumed

	// StatePaused - host left the foreground, observer stopped.
	StatePaused

	// StateDestroyed - terminal.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "INITIALIZED"
	case StateCreated:
		return "CREATED"
	case StateResumed:
		return "RESUMED"
	case StatePaused:
		return "PAUSED"
	case StateDestroyed:
		return "DESTROYED"
	default:
		return "UNKNOWN"
	}
}

// Observer is the part of *observer.Observer the host drives.
type Observer interface {
	Start()
	Stop()
	SetListener(l observer.StatusListener)
}

// Renderer displays a status.
type Renderer interface {
	Render(status observer.Status)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(observer.Status)

// Render calls f(status).
func (f RendererFunc) Render(status observer.Status) { f(status) }

// Host drives an Observer from lifecycle callbacks.
type Host struct {
	mu    sync.Mutex
	state State

	observer Observer
	renderer Renderer
	logger   *slog.Logger

	onStateChange func(from, to State)
}

// New creates a Host. renderer may be nil; logger may be nil.
func New(obs Observer, renderer Renderer, logger *slog.Logger) *Host {
	return &Host{
		observer: obs,
		renderer: renderer,
		logger:   logger,
	}
}

// OnStateChange sets a callback invoked after every transition.
func (h *Host) OnStateChange(fn func(from, to State)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onStateChange = fn
}

// State returns the current lifecycle state.
func (h *Host) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Create attaches the renderer as status listener.
func (h *Host) Create() error {
	return h.transition(StateCreated, func() {
		if h.renderer != nil {
			h.observer.SetListener(observer.StatusListenerFunc(h.renderer.Render))
		}
	}, StateInitialized)
}

// Resume starts the observer. Start publishes once, granted or not, and
// that status reaches the renderer through the listener set in Create,
// serialized with every later status.
func (h *Host) Resume() error {
	return h.transition(StateResumed, h.observer.Start, StateCreated, StatePaused)
}

// Pause stops the observer.
func (h *Host) Pause() error {
	return h.transition(StatePaused, h.observer.Stop, StateResumed)
}

// Destroy stops the observer and detaches the renderer. Destroy is
// allowed from every state except StateDestroyed.
func (h *Host) Destroy() error {
	return h.transition(StateDestroyed, func() {
		h.observer.Stop()
		h.observer.SetListener(nil)
	}, StateInitialized, StateCreated, StateResumed, StatePaused)
}

// transition moves to the target state if the current state is one of
// from, running action outside the lock.
func (h *Host) transition(to State, action func(), from ...State) error {
	h.mu.Lock()
	current := h.state
	if current == StateDestroyed {
		h.mu.Unlock()
		return ErrDestroyed
	}
	if !slices.Contains(from, current) {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, to)
	}
	h.state = to
	cb := h.onStateChange
	h.mu.Unlock()

	action()
	h.debugLog("lifecycle transition", "from", current.String(), "to", to.String())

	if cb != nil {
		cb(current, to)
	}
	return nil
}

// debugLog logs a debug message if a logger is configured.
func (h *Host) debugLog(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}

var _ Observer = (*observer.Observer)(nil)
