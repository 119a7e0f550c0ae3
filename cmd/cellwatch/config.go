package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
	"github.com/cellwatch/cellwatch-go/pkg/simulator"
)

// DeviceConfig describes the simulated device, as loaded from -config.
type DeviceConfig struct {
	// Granted is whether READ_PHONE_STATE is granted at launch.
	Granted bool `yaml:"granted"`

	// SIMs are the installed SIMs.
	SIMs []SIMConfig `yaml:"sims"`

	// DefaultData is the subscription carrying data (-1 for none).
	DefaultData int `yaml:"default_data"`

	// Networks are the networks known at launch.
	Networks []NetworkConfig `yaml:"networks"`

	// StrictRequests only delivers capability updates matching the request.
	StrictRequests bool `yaml:"strict_requests"`
}

// SIMConfig is one SIM slot.
type SIMConfig struct {
	ID       int    `yaml:"id"`
	Override string `yaml:"override"`
}

// NetworkConfig is one network and its capabilities.
type NetworkConfig struct {
	ID           string   `yaml:"id"`
	Transports   []string `yaml:"transports"`
	Capabilities []string `yaml:"capabilities"`
	DownKbps     int      `yaml:"down_kbps"`
	UpKbps       int      `yaml:"up_kbps"`
}

// DefaultDeviceConfig returns a granted single-SIM device with data on SIM 1.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		Granted:     true,
		SIMs:        []SIMConfig{{ID: 1, Override: "NONE"}},
		DefaultData: 1,
	}
}

// loadDeviceConfig reads a YAML device config. Fields missing from the
// file keep their default values.
func loadDeviceConfig(path string) (DeviceConfig, error) {
	cfg := DefaultDeviceConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// simulatorConfig converts the device config to a simulator.Config.
func (c DeviceConfig) simulatorConfig() (simulator.Config, error) {
	sc := simulator.DefaultConfig()
	sc.StrictRequests = c.StrictRequests
	sc.DefaultData = observer.SubscriptionID(c.DefaultData)
	if c.Granted {
		sc.Granted = []observer.Permission{observer.PermissionReadPhoneState}
	}

	for _, sim := range c.SIMs {
		if sim.ID < 0 {
			return sc, fmt.Errorf("SIM id must not be negative, got %d", sim.ID)
		}
		raw, err := observer.ParsePlatformOverride(sim.Override)
		if err != nil {
			return sc, fmt.Errorf("SIM %d: %w", sim.ID, err)
		}
		sc.SIMs = append(sc.SIMs, simulator.SIMConfig{ID: observer.SubscriptionID(sim.ID), Override: raw})
	}

	for _, n := range c.Networks {
		caps, err := n.capabilities()
		if err != nil {
			return sc, fmt.Errorf("network %s: %w", n.ID, err)
		}
		sc.Networks = append(sc.Networks, simulator.NetworkConfig{ID: observer.NetworkID(n.ID), Capabilities: caps})
	}
	return sc, nil
}

func (n NetworkConfig) capabilities() (observer.NetworkCapabilities, error) {
	caps := observer.NetworkCapabilities{
		LinkDownstreamKbps: n.DownKbps,
		LinkUpstreamKbps:   n.UpKbps,
	}
	for _, name := range n.Transports {
		t, ok := observer.ParseTransport(name)
		if !ok {
			return caps, fmt.Errorf("unknown transport %q", name)
		}
		caps.Transports = append(caps.Transports, t)
	}
	for _, name := range n.Capabilities {
		c, ok := observer.ParseCapability(name)
		if !ok {
			return caps, fmt.Errorf("unknown capability %q", name)
		}
		caps.Capabilities = append(caps.Capabilities, c)
	}
	return caps, nil
}
