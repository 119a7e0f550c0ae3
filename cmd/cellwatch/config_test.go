package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
)

func TestLoadDeviceConfigDefaults(t *testing.T) {
	cfg, err := loadDeviceConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDeviceConfig(), cfg)

	sc, err := cfg.simulatorConfig()
	require.NoError(t, err)
	assert.Equal(t, []observer.Permission{observer.PermissionReadPhoneState}, sc.Granted)
	assert.Equal(t, observer.SubscriptionID(1), sc.DefaultData)
	require.Len(t, sc.SIMs, 1)
	assert.Equal(t, observer.PlatformOverrideNone, sc.SIMs[0].Override)
}

func TestLoadDeviceConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dual-sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
granted: false
default_data: 2
sims:
  - id: 1
    override: LTE-CA
  - id: 2
    override: NR_NSA
networks:
  - id: rmnet0
    transports: [CELLULAR]
    capabilities: [INTERNET, VALIDATED, NOT_METERED]
    down_kbps: 50000
    up_kbps: 8000
strict_requests: true
`), 0o644))

	cfg, err := loadDeviceConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Granted)
	assert.True(t, cfg.StrictRequests)

	sc, err := cfg.simulatorConfig()
	require.NoError(t, err)
	assert.Empty(t, sc.Granted)
	assert.True(t, sc.StrictRequests)
	assert.Equal(t, observer.SubscriptionID(2), sc.DefaultData)
	require.Len(t, sc.SIMs, 2)
	assert.Equal(t, observer.PlatformOverrideLTECA, sc.SIMs[0].Override)
	assert.Equal(t, observer.PlatformOverrideNRNSA, sc.SIMs[1].Override)

	require.Len(t, sc.Networks, 1)
	n := sc.Networks[0]
	assert.Equal(t, observer.NetworkID("rmnet0"), n.ID)
	assert.True(t, n.Capabilities.HasTransport(observer.TransportCellular))
	assert.True(t, n.Capabilities.HasCapability(observer.CapabilityNotMetered))
	assert.Equal(t, 50000, n.Capabilities.LinkDownstreamKbps)
	assert.Equal(t, 8000, n.Capabilities.LinkUpstreamKbps)
}

func TestDeviceConfigErrors(t *testing.T) {
	_, err := loadDeviceConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sims: {"), 0o644))
	_, err = loadDeviceConfig(bad)
	assert.Error(t, err)

	tests := []struct {
		name string
		cfg  DeviceConfig
	}{
		{"negative sim", DeviceConfig{SIMs: []SIMConfig{{ID: -2}}}},
		{"bad override", DeviceConfig{SIMs: []SIMConfig{{ID: 1, Override: "6G"}}}},
		{"bad transport", DeviceConfig{Networks: []NetworkConfig{{ID: "x", Transports: []string{"SATELLITE"}}}}},
		{"bad capability", DeviceConfig{Networks: []NetworkConfig{{ID: "x", Capabilities: []string{"FREE"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.simulatorConfig()
			assert.Error(t, err)
		})
	}
}

func TestSetupLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		logger, err := setupLogging(level)
		require.NoError(t, err, level)
		assert.NotNil(t, logger)
	}

	_, err := setupLogging("verbose")
	assert.Error(t, err)
}
