package observer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownOverride is returned when an override name cannot be parsed.
var ErrUnknownOverride = errors.New("unknown override type")

// Platform override network type values, as delivered to OverrideWatcher.
const (
	PlatformOverrideNone           = 0
	PlatformOverrideLTECA          = 1
	PlatformOverrideLTEAdvancedPro = 2
	PlatformOverrideNRNSA          = 3
	PlatformOverrideNRNSAMmWave    = 4

	// PlatformOverrideNRAdvanced exists on newer platforms and has no
	// dedicated RadioOverrideType; it maps to OverrideUnknown.
	PlatformOverrideNRAdvanced = 5
)

var overrideTable = map[int]RadioOverrideType{
	PlatformOverrideNone:           OverrideNone,
	PlatformOverrideLTECA:          OverrideLTECA,
	PlatformOverrideLTEAdvancedPro: OverrideLTEAdvancedPro,
	PlatformOverrideNRNSA:          OverrideNRNSA,
	PlatformOverrideNRNSAMmWave:    OverrideNRNSAMmWave,
}

// MapOverrideType maps a platform override value to a RadioOverrideType.
// Values not in the table map to OverrideUnknown.
func MapOverrideType(v int) RadioOverrideType {
	if t, ok := overrideTable[v]; ok {
		return t
	}
	return OverrideUnknown
}

// PlatformOverrideValue returns the platform value for t.
// It returns false for OverrideUnknown, which has no platform value.
func PlatformOverrideValue(t RadioOverrideType) (int, bool) {
	for v, mapped := range overrideTable {
		if mapped == t {
			return v, true
		}
	}
	return 0, false
}

// ParseRadioOverrideType parses either the name (NR_NSA) or the display
// label (NR-NSA) of an override type, case-insensitively.
func ParseRadioOverrideType(s string) (RadioOverrideType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t := OverrideNone; t <= OverrideUnknown; t++ {
		if s == t.String() || s == t.Label() {
			return t, true
		}
	}
	return OverrideUnknown, false
}

// ParsePlatformOverride parses a platform override value given as a raw
// integer, an override type name or a label. The empty string is NONE.
func ParsePlatformOverride(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PlatformOverrideNone, nil
	}
	if raw, err := strconv.Atoi(s); err == nil {
		return raw, nil
	}
	t, ok := ParseRadioOverrideType(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOverride, s)
	}
	raw, ok := PlatformOverrideValue(t)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no platform value", ErrUnknownOverride, s)
	}
	return raw, nil
}
