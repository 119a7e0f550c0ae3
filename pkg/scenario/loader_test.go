package scenario_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellwatch/cellwatch-go/pkg/scenario"
)

func TestParseScenarioBasic(t *testing.T) {
	data := `
id: SC-TEST-001
name: Basic
platform:
  granted: true
  sims:
    - id: 3
      override: nr-nsa
  default_data: 3
steps:
  - action: start
    expect:
      state: BOUND
`
	sc, err := scenario.ParseScenario([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "SC-TEST-001", sc.ID)
	assert.Equal(t, "Basic", sc.Name)
	assert.True(t, sc.Platform.Granted)
	require.Len(t, sc.Platform.SIMs, 1)
	assert.Equal(t, 3, sc.Platform.SIMs[0].ID)
	require.NotNil(t, sc.Platform.DefaultData)
	assert.Equal(t, 3, *sc.Platform.DefaultData)
	require.Len(t, sc.Steps, 1)
	assert.Equal(t, scenario.ActionStart, sc.Steps[0].Action)
	assert.Equal(t, "BOUND", sc.Steps[0].Expect["state"])
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid yaml", "id: [", "failed to parse YAML"},
		{"missing id", "steps:\n  - action: start\n", "scenario ID is required"},
		{"no steps", "id: X\n", "at least one step"},
		{"unknown action", "id: X\nsteps:\n  - action: start\n  - action: reboot\n", `step 2: unknown action "reboot"`},
		{"bad override", "id: X\nplatform:\n  sims:\n    - id: 1\n      override: 6G\nsteps:\n  - action: start\n", "invalid SIM override"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.ParseScenario([]byte(tt.data))
			require.Error(t, err)

			var le *scenario.LoadError
			require.True(t, errors.As(err, &le))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenarioSetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: no id\nsteps:\n  - action: start\n"), 0o644))

	_, err := scenario.LoadScenario(path)
	var le *scenario.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.File)

	_, err = scenario.LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, errors.As(err, &le))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDirectory(t *testing.T) {
	scenarios, err := scenario.LoadDirectory("testdata")
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "SC-SESSION-001", scenarios[0].ID)
	assert.Equal(t, "SC-REBIND-001", scenarios[1].ID)

	_, err = scenario.LoadDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
