package lifecycle_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellwatch/cellwatch-go/pkg/lifecycle"
	"github.com/cellwatch/cellwatch-go/pkg/log"
	"github.com/cellwatch/cellwatch-go/pkg/observer"
	"github.com/cellwatch/cellwatch-go/pkg/simulator"
)

type screen struct {
	mu       sync.Mutex
	rendered []observer.Status
}

func (s *screen) Render(status observer.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rendered = append(s.rendered, status)
}

func (s *screen) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rendered)
}

func (s *screen) last() observer.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rendered[len(s.rendered)-1]
}

func setup(t *testing.T) (*lifecycle.Host, *simulator.Platform, *observer.Observer, *screen) {
	t.Helper()

	config := simulator.DefaultConfig()
	config.Granted = []observer.Permission{observer.PermissionReadPhoneState}
	config.SIMs = []simulator.SIMConfig{{ID: 1, Override: observer.PlatformOverrideNRNSA}}
	config.DefaultData = 1
	p := simulator.New(config)
	t.Cleanup(p.Close)

	oc := observer.DefaultConfig()
	oc.Permissions = p
	oc.Subscriptions = p
	oc.Network = p
	o, err := observer.New(oc, nil)
	require.NoError(t, err)

	s := &screen{}
	return lifecycle.New(o, s, nil), p, o, s
}

func TestHostLifecycle(t *testing.T) {
	h, p, o, s := setup(t)
	assert.Equal(t, lifecycle.StateInitialized, h.State())

	var transitions []string
	h.OnStateChange(func(from, to lifecycle.State) {
		transitions = append(transitions, from.String()+">"+to.String())
	})

	require.NoError(t, h.Create())
	assert.False(t, o.Observing())

	require.NoError(t, h.Resume())
	p.Sync()
	assert.True(t, o.Observing())
	assert.Equal(t, lifecycle.StateResumed, h.State())
	assert.Equal(t, observer.OverrideNRNSA, s.last().OverrideType)
	assert.Equal(t, 1, p.OverrideWatcherCount())

	require.NoError(t, h.Pause())
	assert.False(t, o.Observing())
	assert.Equal(t, 0, p.OverrideWatcherCount())

	require.NoError(t, h.Resume())
	p.Sync()
	assert.True(t, o.Observing())

	require.NoError(t, h.Destroy())
	assert.False(t, o.Observing())
	assert.Equal(t, lifecycle.StateDestroyed, h.State())
	assert.Equal(t, 0, p.PrimaryWatcherCount())

	assert.Equal(t, []string{
		"INITIALIZED>CREATED",
		"CREATED>RESUMED",
		"RESUMED>PAUSED",
		"PAUSED>RESUMED",
		"RESUMED>DESTROYED",
	}, transitions)
}

// statusEvents counts published statuses.
type statusEvents struct {
	mu sync.Mutex
	n  int
}

func (c *statusEvents) Log(event log.Event) {
	if event.Category != log.CategoryStatus {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

func (c *statusEvents) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// serialScreen fails the test if two renders overlap.
type serialScreen struct {
	screen
	busy atomic.Bool
	t    *testing.T
}

func (s *serialScreen) Render(status observer.Status) {
	if !s.busy.CompareAndSwap(false, true) {
		s.t.Error("renders overlapped")
		return
	}
	defer s.busy.Store(false)
	s.screen.Render(status)
}

func TestResumeRendersEachPublishedStatusOnce(t *testing.T) {
	config := simulator.DefaultConfig()
	config.Granted = []observer.Permission{observer.PermissionReadPhoneState}
	config.SIMs = []simulator.SIMConfig{{ID: 1, Override: observer.PlatformOverrideNRNSA}}
	config.DefaultData = 1
	p := simulator.New(config)
	t.Cleanup(p.Close)

	published := &statusEvents{}
	oc := observer.DefaultConfig()
	oc.Permissions = p
	oc.Subscriptions = p
	oc.Network = p
	oc.EventLogger = published
	o, err := observer.New(oc, nil)
	require.NoError(t, err)

	s := &serialScreen{t: t}
	h := lifecycle.New(o, s, nil)
	require.NoError(t, h.Create())

	for range 3 {
		require.NoError(t, h.Resume())
		p.SetOverride(1, observer.PlatformOverrideLTECA)
		p.UpdateNetwork("rmnet0", observer.NetworkCapabilities{
			Transports:         []observer.Transport{observer.TransportCellular},
			Capabilities:       []observer.Capability{observer.CapabilityInternet, observer.CapabilityValidated},
			LinkDownstreamKbps: 1000,
		})
		p.Sync()
		require.NoError(t, h.Pause())
		p.SetOverride(1, observer.PlatformOverrideNRNSA)
	}
	p.Sync()

	// Each published status is rendered exactly once, none twice.
	assert.Equal(t, published.count(), s.count())
	require.NoError(t, h.Destroy())
}

func TestResumeWithoutPermissionRendersBanner(t *testing.T) {
	h, p, o, s := setup(t)
	p.Revoke(observer.PermissionReadPhoneState)

	require.NoError(t, h.Create())
	require.NoError(t, h.Resume())

	assert.False(t, o.Observing())
	assert.False(t, s.last().HasPermission)
}

func TestInvalidTransitions(t *testing.T) {
	h, _, _, _ := setup(t)

	assert.ErrorIs(t, h.Resume(), lifecycle.ErrInvalidTransition)
	assert.ErrorIs(t, h.Pause(), lifecycle.ErrInvalidTransition)

	require.NoError(t, h.Create())
	assert.ErrorIs(t, h.Create(), lifecycle.ErrInvalidTransition)
	assert.ErrorIs(t, h.Pause(), lifecycle.ErrInvalidTransition)

	require.NoError(t, h.Resume())
	assert.ErrorIs(t, h.Resume(), lifecycle.ErrInvalidTransition)
	assert.Equal(t, lifecycle.StateResumed, h.State())

	require.NoError(t, h.Destroy())
	assert.ErrorIs(t, h.Destroy(), lifecycle.ErrDestroyed)
	assert.ErrorIs(t, h.Create(), lifecycle.ErrDestroyed)
	assert.ErrorIs(t, h.Resume(), lifecycle.ErrDestroyed)
}

func TestDestroyBeforeCreate(t *testing.T) {
	h, _, o, _ := setup(t)
	require.NoError(t, h.Destroy())
	assert.False(t, o.Observing())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "PAUSED", lifecycle.StatePaused.String())
	assert.Equal(t, "UNKNOWN", lifecycle.State(42).String())
}
