// Package scenario loads and runs scripted observer sessions from YAML.
package scenario

import (
	"strconv"
	"time"
)

// Scenario is one scripted session loaded from YAML.
type Scenario struct {
	// ID is the unique scenario identifier (e.g., "SC-REBIND-001").
	ID string `yaml:"id"`

	// Name is a human-readable name for the scenario.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description"`

	// Platform is the simulated platform at the start of the scenario.
	Platform PlatformSetup `yaml:"platform"`

	// Steps are the actions to execute in order.
	Steps []Step `yaml:"steps"`

	// Tags for categorizing scenarios.
	Tags []string `yaml:"tags,omitempty"`
}

// PlatformSetup describes the simulated platform before the first step.
type PlatformSetup struct {
	// Granted is whether the read-phone-state permission is granted.
	Granted bool `yaml:"granted"`

	// SIMs are the installed SIMs.
	SIMs []SIM `yaml:"sims,omitempty"`

	// DefaultData is the subscription carrying data. Omitted or negative
	// means no data subscription.
	DefaultData *int `yaml:"default_data,omitempty"`

	// StrictRequests only delivers matching capability updates.
	StrictRequests bool `yaml:"strict_requests,omitempty"`
}

// SIM is one installed SIM.
type SIM struct {
	ID int `yaml:"id"`

	// Override is the initial override, as a type name (NR_NSA), a
	// label (NR-NSA) or a raw platform value.
	Override string `yaml:"override,omitempty"`
}

// Step represents a single action in a scenario.
type Step struct {
	// Action is the action to perform (e.g., "start", "override").
	Action string `yaml:"action"`

	// Params are parameters for the action.
	Params map[string]interface{} `yaml:"params,omitempty"`

	// Expect defines expected observer state after the action.
	Expect map[string]interface{} `yaml:"expect,omitempty"`

	// Description explains what this step does.
	Description string `yaml:"description,omitempty"`
}

// Result represents the outcome of running a scenario.
type Result struct {
	// Scenario is the scenario that was executed.
	Scenario *Scenario

	// Passed indicates if all steps passed.
	Passed bool

	// Error is the error that stopped the run, if any.
	Error error

	// StepResults contains results for each executed step.
	StepResults []*StepResult

	// Duration is how long the run took.
	Duration time.Duration
}

// StepResult represents the outcome of a single step.
type StepResult struct {
	// Step is the step that was executed.
	Step *Step

	// StepIndex is the index of this step (0-based).
	StepIndex int

	// Passed indicates if the action succeeded and all expectations held.
	Passed bool

	// Error is the error returned by the action, if any.
	Error error

	// ExpectResults maps expectation keys to their results.
	ExpectResults map[string]*ExpectResult
}

// ExpectResult represents the result of checking an expectation.
type ExpectResult struct {
	Key      string
	Expected interface{}
	Actual   interface{}
	Passed   bool
	Message  string
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Step is the 1-based step number the error refers to (0 if none).
	Step int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Step > 0 {
		msg = "step " + strconv.Itoa(e.Step) + ": " + msg
	}
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
