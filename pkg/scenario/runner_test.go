package scenario_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
	"github.com/cellwatch/cellwatch-go/pkg/scenario"
)

func requirePassed(t *testing.T, result *scenario.Result) {
	t.Helper()
	require.NoError(t, result.Error)
	for _, sr := range result.StepResults {
		assert.NoError(t, sr.Error, "step %d (%s)", sr.StepIndex+1, sr.Step.Action)
		for key, er := range sr.ExpectResults {
			assert.True(t, er.Passed, "step %d (%s) %s: %s", sr.StepIndex+1, sr.Step.Action, key, er.Message)
		}
	}
	require.True(t, result.Passed)
}

func TestRunTestdataScenarios(t *testing.T) {
	scenarios, err := scenario.LoadDirectory("testdata")
	require.NoError(t, err)

	for _, sc := range scenarios {
		t.Run(sc.ID, func(t *testing.T) {
			r := scenario.NewRunner(scenario.RunnerConfig{})
			result := r.Run(context.Background(), sc)
			requirePassed(t, result)
			assert.Len(t, result.StepResults, len(sc.Steps))
		})
	}
}

func TestRunReportsFailedExpectation(t *testing.T) {
	sc, err := scenario.ParseScenario([]byte(`
id: SC-FAIL-001
platform:
  granted: true
  sims: [{id: 1, override: LTE_CA}]
  default_data: 1
steps:
  - action: start
    expect:
      override_type: NR_NSA
      bogus_key: 1
  - action: stop
`))
	require.NoError(t, err)

	result := scenario.NewRunner(scenario.RunnerConfig{}).Run(context.Background(), sc)
	assert.False(t, result.Passed)
	require.Len(t, result.StepResults, 2)

	first := result.StepResults[0]
	assert.False(t, first.Passed)
	assert.False(t, first.ExpectResults["override_type"].Passed)
	assert.Equal(t, "LTE_CA", first.ExpectResults["override_type"].Actual)
	assert.Contains(t, first.ExpectResults["bogus_key"].Message, "unknown expectation")
	assert.True(t, result.StepResults[1].Passed)
}

func TestRunStopOnFailure(t *testing.T) {
	sc, err := scenario.ParseScenario([]byte(`
id: SC-FAIL-002
steps:
  - action: override
    params: {value: NR_NSA}
  - action: start
`))
	require.NoError(t, err)

	result := scenario.NewRunner(scenario.RunnerConfig{StopOnFailure: true}).Run(context.Background(), sc)
	assert.False(t, result.Passed)
	require.Len(t, result.StepResults, 1)
	assert.ErrorContains(t, result.StepResults[0].Error, `"sim" is required`)
}

func TestRunLifecycleErrors(t *testing.T) {
	sc, err := scenario.ParseScenario([]byte(`
id: SC-FAIL-003
steps:
  - action: pause
`))
	require.NoError(t, err)

	result := scenario.NewRunner(scenario.RunnerConfig{}).Run(context.Background(), sc)
	assert.False(t, result.Passed)
	assert.Error(t, result.StepResults[0].Error)
}

func TestRunCancelled(t *testing.T) {
	sc, err := scenario.ParseScenario([]byte("id: SC-X\nsteps:\n  - action: start\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := scenario.NewRunner(scenario.RunnerConfig{}).Run(ctx, sc)
	assert.False(t, result.Passed)
	assert.ErrorIs(t, result.Error, context.Canceled)
	assert.Empty(t, result.StepResults)
}

func TestRunRendersStatuses(t *testing.T) {
	sc, err := scenario.ParseScenario([]byte(`
id: SC-RENDER-001
platform:
  granted: true
  sims: [{id: 0}]
  default_data: 0
steps:
  - action: resume
  - action: capabilities
    params: {down_kbps: 1200, up_kbps: 300, temporarily_not_metered: true}
`))
	require.NoError(t, err)

	var mu sync.Mutex
	var rendered []observer.Status
	r := scenario.NewRunner(scenario.RunnerConfig{
		Renderer: rendererFunc(func(s observer.Status) {
			mu.Lock()
			defer mu.Unlock()
			rendered = append(rendered, s)
		}),
	})
	requirePassed(t, r.Run(context.Background(), sc))

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, rendered)
	last := rendered[len(rendered)-1]
	assert.True(t, last.Capabilities.TemporarilyNotMetered)
	assert.Equal(t, 1200, last.Capabilities.DownstreamKbps)
	assert.Equal(t, 300, last.Capabilities.UpstreamKbps)
}

type rendererFunc func(observer.Status)

func (f rendererFunc) Render(s observer.Status) { f(s) }

func TestRunCapabilitiesParamErrors(t *testing.T) {
	for i, params := range []string{
		"{transports: [SATELLITE]}",
		"{capabilities: [FREE]}",
		"{down_kbps: fast}",
		"{not_metered: maybe}",
	} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			sc, err := scenario.ParseScenario([]byte("id: X\nsteps:\n  - action: capabilities\n    params: " + params + "\n"))
			require.NoError(t, err)
			result := scenario.NewRunner(scenario.RunnerConfig{}).Run(context.Background(), sc)
			assert.Error(t, result.StepResults[0].Error)
		})
	}
}
