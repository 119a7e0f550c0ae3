package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cellwatch/cellwatch-go/pkg/lifecycle"
	"github.com/cellwatch/cellwatch-go/pkg/log"
	"github.com/cellwatch/cellwatch-go/pkg/observer"
	"github.com/cellwatch/cellwatch-go/pkg/simulator"
)

// ErrUnknownAction is returned for steps whose action the runner does not know.
var ErrUnknownAction = errors.New("unknown action")

// Default network used by the capabilities action.
const defaultNetwork = "rmnet0"

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	// Logger is the optional logger for debug output.
	Logger *slog.Logger

	// EventLogger receives the observer events of every run.
	EventLogger log.Logger

	// Renderer is called with every status the host renders.
	Renderer lifecycle.Renderer

	// StopOnFailure stops a run at the first failed step.
	StopOnFailure bool
}

// Runner executes scenarios against a simulated platform.
type Runner struct {
	config RunnerConfig
}

// NewRunner creates a Runner.
func NewRunner(config RunnerConfig) *Runner {
	return &Runner{config: config}
}

// publishCounter counts status events.
type publishCounter struct {
	n atomic.Int64
}

func (c *publishCounter) Log(event log.Event) {
	if event.Category == log.CategoryStatus {
		c.n.Add(1)
	}
}

// session is the state of one run.
type session struct {
	platform  *simulator.Platform
	observer  *observer.Observer
	host      *lifecycle.Host
	publishes *publishCounter

	// lastPublishes is the publish count at the previous expect_publishes.
	lastPublishes int
}

// Run executes every step of sc on a fresh platform and observer.
func (r *Runner) Run(ctx context.Context, sc *Scenario) *Result {
	start := time.Now()
	result := &Result{Scenario: sc, Passed: true}
	defer func() { result.Duration = time.Since(start) }()

	s, err := r.newSession(sc)
	if err != nil {
		result.Passed = false
		result.Error = err
		return result
	}
	defer s.close()

	for i := range sc.Steps {
		if err := ctx.Err(); err != nil {
			result.Passed = false
			result.Error = err
			return result
		}

		step := &sc.Steps[i]
		sr := r.runStep(s, step)
		sr.StepIndex = i
		result.StepResults = append(result.StepResults, sr)

		if !sr.Passed {
			result.Passed = false
			r.debugLog("step failed", "scenario", sc.ID, "step", i+1, "action", step.Action, "error", sr.Error)
			if r.config.StopOnFailure {
				break
			}
		}
	}

	return result
}

func (r *Runner) newSession(sc *Scenario) (*session, error) {
	pc := simulator.DefaultConfig()
	pc.Logger = r.config.Logger
	pc.StrictRequests = sc.Platform.StrictRequests
	if sc.Platform.Granted {
		pc.Granted = []observer.Permission{observer.PermissionReadPhoneState}
	}
	for _, sim := range sc.Platform.SIMs {
		raw, err := parseOverride(sim.Override)
		if err != nil {
			return nil, err
		}
		pc.SIMs = append(pc.SIMs, simulator.SIMConfig{ID: observer.SubscriptionID(sim.ID), Override: raw})
	}
	if sc.Platform.DefaultData != nil {
		pc.DefaultData = observer.SubscriptionID(*sc.Platform.DefaultData)
	}

	platform := simulator.New(pc)
	counter := &publishCounter{}

	oc := observer.DefaultConfig()
	oc.Permissions = platform
	oc.Subscriptions = platform
	oc.Network = platform
	oc.Logger = r.config.Logger
	oc.EventLogger = log.NewMultiLogger(counter, r.config.EventLogger)

	obs, err := observer.New(oc, nil)
	if err != nil {
		platform.Close()
		return nil, err
	}

	host := lifecycle.New(obs, r.config.Renderer, r.config.Logger)
	if err := host.Create(); err != nil {
		platform.Close()
		return nil, err
	}

	return &session{
		platform:  platform,
		observer:  obs,
		host:      host,
		publishes: counter,
	}, nil
}

func (s *session) close() {
	_ = s.host.Destroy()
	s.platform.Close()
}

func (r *Runner) runStep(s *session, step *Step) *StepResult {
	sr := &StepResult{Step: step, ExpectResults: make(map[string]*ExpectResult)}

	if err := r.execute(s, step); err != nil {
		sr.Error = err
		return sr
	}
	s.platform.Sync()

	sr.Passed = true
	for key, expected := range step.Expect {
		er := s.check(key, expected)
		sr.ExpectResults[key] = er
		if !er.Passed {
			sr.Passed = false
		}
	}

	if step.Action == ActionExpectPublishes {
		s.lastPublishes = s.published()
	}
	return sr
}

func (r *Runner) execute(s *session, step *Step) error {
	params := step.Params

	switch step.Action {
	case ActionGrant:
		s.platform.Grant(observer.PermissionReadPhoneState)
	case ActionRevoke:
		s.platform.Revoke(observer.PermissionReadPhoneState)
	case ActionStart:
		s.observer.Start()
	case ActionStop:
		s.observer.Stop()
	case ActionResume:
		return s.host.Resume()
	case ActionPause:
		return s.host.Pause()

	case ActionSetDataSubscription:
		v, ok := params["id"]
		if !ok {
			return fmt.Errorf("param %q is required", "id")
		}
		id, ok := parseSubscription(v)
		if !ok {
			return fmt.Errorf("param %q: invalid subscription %v", "id", v)
		}
		s.platform.SetDefaultData(id)

	case ActionOverride:
		sim, err := requiredIntParam(params, "sim")
		if err != nil {
			return err
		}
		value, err := overrideParam(params)
		if err != nil {
			return err
		}
		s.platform.SetOverride(observer.SubscriptionID(sim), value)

	case ActionCapabilities:
		network, caps, err := capabilitiesParams(params)
		if err != nil {
			return err
		}
		s.platform.UpdateNetwork(network, caps)

	case ActionExpectStatus, ActionExpectPublishes:
		// Expectations only.

	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}
	return nil
}

func capabilitiesParams(params map[string]interface{}) (observer.NetworkID, observer.NetworkCapabilities, error) {
	var caps observer.NetworkCapabilities

	network := defaultNetwork
	if v, ok := params["network"].(string); ok && v != "" {
		network = v
	}

	transports, err := stringsParam(params, "transports", []string{"CELLULAR"})
	if err != nil {
		return "", caps, err
	}
	if caps.Transports, err = parseTransports(transports); err != nil {
		return "", caps, err
	}

	names, err := stringsParam(params, "capabilities", []string{"INTERNET", "VALIDATED"})
	if err != nil {
		return "", caps, err
	}
	if caps.Capabilities, err = parseCapabilities(names); err != nil {
		return "", caps, err
	}
	for flag, c := range map[string]observer.Capability{
		"not_metered":             observer.CapabilityNotMetered,
		"temporarily_not_metered": observer.CapabilityTemporarilyNotMetered,
	} {
		v, ok := params[flag]
		if !ok {
			continue
		}
		set, ok := toBool(v)
		if !ok {
			return "", caps, fmt.Errorf("param %q: expected bool, got %T", flag, v)
		}
		if set && !caps.HasCapability(c) {
			caps.Capabilities = append(caps.Capabilities, c)
		}
	}

	if caps.LinkDownstreamKbps, err = intParam(params, "down_kbps", 0); err != nil {
		return "", caps, err
	}
	if caps.LinkUpstreamKbps, err = intParam(params, "up_kbps", 0); err != nil {
		return "", caps, err
	}
	return observer.NetworkID(network), caps, nil
}

func (s *session) published() int {
	return int(s.publishes.n.Load())
}

// debugLog logs a debug message if a logger is configured.
func (r *Runner) debugLog(msg string, args ...any) {
	if r.config.Logger != nil {
		r.config.Logger.Debug(msg, args...)
	}
}
