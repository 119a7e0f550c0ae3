package scenario

import (
	"fmt"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
)

// Expectation keys.
const (
	ExpectOverrideType          = "override_type"
	ExpectHasPermission         = "has_permission"
	ExpectTemporarilyNotMetered = "temporarily_not_metered"
	ExpectNotMetered            = "not_metered"
	ExpectDownKbps              = "down_kbps"
	ExpectUpKbps                = "up_kbps"
	ExpectDataSubscription      = "data_subscription"
	ExpectState                 = "state"
	ExpectObserving             = "observing"
	ExpectOverrideWatchers      = "override_watchers"
	ExpectPublishes             = "publishes"
	ExpectPublishesSinceLast    = "publishes_since_last"
)

// check evaluates one expectation against the current session.
func (s *session) check(key string, expected interface{}) *ExpectResult {
	status := s.observer.Status()

	switch key {
	case ExpectOverrideType:
		name, ok := expected.(string)
		want, known := observer.ParseRadioOverrideType(name)
		if !ok || !known {
			return invalidExpectation(key, expected, "override type name")
		}
		return compare(key, expected, status.OverrideType.String(), status.OverrideType == want)

	case ExpectHasPermission:
		return compareBool(key, expected, status.HasPermission)
	case ExpectTemporarilyNotMetered:
		return compareBool(key, expected, status.Capabilities.TemporarilyNotMetered)
	case ExpectNotMetered:
		return compareBool(key, expected, status.Capabilities.NotMetered)
	case ExpectObserving:
		return compareBool(key, expected, s.observer.Observing())

	case ExpectDownKbps:
		return compareInt(key, expected, status.Capabilities.DownstreamKbps)
	case ExpectUpKbps:
		return compareInt(key, expected, status.Capabilities.UpstreamKbps)
	case ExpectOverrideWatchers:
		return compareInt(key, expected, s.platform.OverrideWatcherCount())
	case ExpectPublishes:
		return compareInt(key, expected, s.published())
	case ExpectPublishesSinceLast:
		return compareInt(key, expected, s.published()-s.lastPublishes)

	case ExpectDataSubscription:
		want, ok := parseSubscription(expected)
		if !ok {
			return invalidExpectation(key, expected, "subscription id or INVALID")
		}
		return compare(key, expected, status.DataSubscription.String(), status.DataSubscription == want)

	case ExpectState:
		name, _ := expected.(string)
		state := s.observer.State().String()
		return compare(key, expected, state, state == name)

	default:
		return &ExpectResult{
			Key:      key,
			Expected: expected,
			Message:  fmt.Sprintf("unknown expectation %q", key),
		}
	}
}

func compare(key string, expected, actual interface{}, passed bool) *ExpectResult {
	return &ExpectResult{
		Key:      key,
		Expected: expected,
		Actual:   actual,
		Passed:   passed,
		Message:  fmt.Sprintf("expected %v, got %v", expected, actual),
	}
}

func compareBool(key string, expected interface{}, actual bool) *ExpectResult {
	want, ok := toBool(expected)
	if !ok {
		return invalidExpectation(key, expected, "bool")
	}
	return compare(key, expected, actual, actual == want)
}

func compareInt(key string, expected interface{}, actual int) *ExpectResult {
	want, ok := toInt(expected)
	if !ok {
		return invalidExpectation(key, expected, "integer")
	}
	return compare(key, expected, actual, actual == want)
}

func invalidExpectation(key string, expected interface{}, kind string) *ExpectResult {
	return &ExpectResult{
		Key:      key,
		Expected: expected,
		Message:  fmt.Sprintf("expected value %v is not a valid %s", expected, kind),
	}
}
