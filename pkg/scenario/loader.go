package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step actions.
const (
	ActionGrant               = "grant"
	ActionRevoke              = "revoke"
	ActionStart               = "start"
	ActionStop                = "stop"
	ActionResume              = "resume"
	ActionPause               = "pause"
	ActionSetDataSubscription = "set_data_subscription"
	ActionOverride            = "override"
	ActionCapabilities        = "capabilities"
	ActionExpectStatus        = "expect_status"
	ActionExpectPublishes     = "expect_publishes"
)

var knownActions = []string{
	ActionGrant, ActionRevoke, ActionStart, ActionStop, ActionResume, ActionPause,
	ActionSetDataSubscription, ActionOverride, ActionCapabilities,
	ActionExpectStatus, ActionExpectPublishes,
}

// ParseScenario parses a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if sc.ID == "" {
		return nil, &LoadError{Message: "scenario ID is required"}
	}

	if len(sc.Steps) == 0 {
		return nil, &LoadError{Message: "scenario must have at least one step"}
	}

	for i, step := range sc.Steps {
		if !slices.Contains(knownActions, step.Action) {
			return nil, &LoadError{
				Step:    i + 1,
				Message: "unknown action " + strconv.Quote(step.Action),
			}
		}
	}

	for _, sim := range sc.Platform.SIMs {
		if _, err := parseOverride(sim.Override); err != nil {
			return nil, &LoadError{Message: "invalid SIM override", Cause: err}
		}
	}

	return &sc, nil
}

// LoadScenario loads a scenario from a file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	sc, err := ParseScenario(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}

	return sc, nil
}

// LoadDirectory loads all scenarios from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		sc, err := LoadScenario(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}
