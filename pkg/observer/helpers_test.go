package observer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellwatch/cellwatch-go/pkg/log"
	"github.com/cellwatch/cellwatch-go/pkg/observer"
	"github.com/cellwatch/cellwatch-go/pkg/simulator"
)

// statusRecorder collects every status delivered to the listener.
type statusRecorder struct {
	mu       sync.Mutex
	statuses []observer.Status
}

func (r *statusRecorder) OnStatusChanged(s observer.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *statusRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.statuses)
}

func (r *statusRecorder) last() observer.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return observer.Status{}
	}
	return r.statuses[len(r.statuses)-1]
}

// eventRecorder is a log.Logger that keeps events in memory.
type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(event log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) byCategory(c log.Category) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	platform *simulator.Platform
	observer *observer.Observer
	statuses *statusRecorder
	events   *eventRecorder
}

// newFixture wires an observer to a simulated platform.
func newFixture(t *testing.T, config simulator.Config) *fixture {
	t.Helper()

	p := simulator.New(config)
	t.Cleanup(p.Close)

	f := &fixture{
		platform: p,
		statuses: &statusRecorder{},
		events:   &eventRecorder{},
	}

	oc := observer.DefaultConfig()
	oc.Permissions = p
	oc.Subscriptions = p
	oc.Network = p
	oc.EventLogger = f.events

	o, err := observer.New(oc, f.statuses)
	require.NoError(t, err)
	f.observer = o
	t.Cleanup(o.Stop)
	return f
}

// grantedConfig is a platform with permission and two SIMs, SIM 1 carrying data.
func grantedConfig() simulator.Config {
	config := simulator.DefaultConfig()
	config.Granted = []observer.Permission{observer.PermissionReadPhoneState}
	config.SIMs = []simulator.SIMConfig{
		{ID: 1, Override: observer.PlatformOverrideNRNSA},
		{ID: 2, Override: observer.PlatformOverrideLTECA},
	}
	config.DefaultData = 1
	return config
}

func cellular(down, up int, caps ...observer.Capability) observer.NetworkCapabilities {
	return observer.NetworkCapabilities{
		Transports:         []observer.Transport{observer.TransportCellular},
		Capabilities:       append([]observer.Capability{observer.CapabilityInternet, observer.CapabilityValidated}, caps...),
		LinkDownstreamKbps: down,
		LinkUpstreamKbps:   up,
	}
}

func wifi(down, up int, caps ...observer.Capability) observer.NetworkCapabilities {
	return observer.NetworkCapabilities{
		Transports:         []observer.Transport{observer.TransportWiFi},
		Capabilities:       append([]observer.Capability{observer.CapabilityInternet, observer.CapabilityValidated}, caps...),
		LinkDownstreamKbps: down,
		LinkUpstreamKbps:   up,
	}
}

// published returns the number of statuses the observer published. The
// listener may see fewer when publishes race.
func (f *fixture) published() int {
	return len(f.events.byCategory(log.CategoryStatus))
}
