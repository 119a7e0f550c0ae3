package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
)

// toInt converts YAML numeric values to int.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

func toBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	default:
		return false, false
	}
}

func toStrings(v interface{}) ([]string, bool) {
	switch s := v.(type) {
	case string:
		return []string{s}, true
	case []string:
		return s, true
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}

func intParam(params map[string]interface{}, key string, def int) (int, error) {
	v, ok := params[key]
	if !ok {
		return def, nil
	}
	i, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("param %q: expected integer, got %T", key, v)
	}
	return i, nil
}

func requiredIntParam(params map[string]interface{}, key string) (int, error) {
	if _, ok := params[key]; !ok {
		return 0, fmt.Errorf("param %q is required", key)
	}
	return intParam(params, key, 0)
}

func stringsParam(params map[string]interface{}, key string, def []string) ([]string, error) {
	v, ok := params[key]
	if !ok {
		return def, nil
	}
	s, ok := toStrings(v)
	if !ok {
		return nil, fmt.Errorf("param %q: expected string list, got %T", key, v)
	}
	return s, nil
}

// parseSubscription accepts an integer or "INVALID".
func parseSubscription(v interface{}) (observer.SubscriptionID, bool) {
	if s, ok := v.(string); ok && strings.EqualFold(strings.TrimSpace(s), "INVALID") {
		return observer.InvalidSubscriptionID, true
	}
	i, ok := toInt(v)
	if !ok {
		return 0, false
	}
	if i < 0 {
		return observer.InvalidSubscriptionID, true
	}
	return observer.SubscriptionID(i), true
}

// parseOverride accepts a type name, a label or a raw platform value.
func parseOverride(s string) (int, error) {
	return observer.ParsePlatformOverride(s)
}

func overrideParam(params map[string]interface{}) (int, error) {
	v, ok := params["value"]
	if !ok {
		return 0, fmt.Errorf("param %q is required", "value")
	}
	if i, ok := toInt(v); ok {
		return i, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("param %q: expected override name or integer, got %T", "value", v)
	}
	return parseOverride(s)
}

// parseTransports and parseCapabilities map names to platform enums.
func parseTransports(names []string) ([]observer.Transport, error) {
	out := make([]observer.Transport, 0, len(names))
	for _, n := range names {
		t, ok := observer.ParseTransport(n)
		if !ok {
			return nil, fmt.Errorf("unknown transport %q", n)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseCapabilities(names []string) ([]observer.Capability, error) {
	out := make([]observer.Capability, 0, len(names))
	for _, n := range names {
		c, ok := observer.ParseCapability(n)
		if !ok {
			return nil, fmt.Errorf("unknown capability %q", n)
		}
		out = append(out, c)
	}
	return out, nil
}
