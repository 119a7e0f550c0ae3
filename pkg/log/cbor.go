package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Decoder limits sized to Event. The deepest path is
// Event -> CapabilitiesEvent -> Transports, the widest map is Event itself
// (eleven keys) and the longest array is a transports list. The library
// minimums already cover all three, so anything past them is not an Event.
const (
	maxEventNesting  = 4
	maxEventArray    = 16
	maxEventMapPairs = 16
)

// eventEncMode writes events with integer keys in canonical order, so the
// same event always produces the same bytes.
var eventEncMode cbor.EncMode

// eventDecMode only accepts what eventEncMode produces.
var eventDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	eventEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		IndefLength:      cbor.IndefLengthForbidden,
		MaxNestedLevels:  maxEventNesting,
		MaxArrayElements: maxEventArray,
		MaxMapPairs:      maxEventMapPairs,
	}
	eventDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR decoder mode: %v", err))
	}
}

// EncodeEvent encodes an Event to CBOR bytes.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes one Event from CBOR bytes. Input that exceeds the
// Event limits, repeats a key or uses indefinite lengths is rejected.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	return event, nil
}

// NewEncoder returns an event encoder writing to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder returns an event decoder reading from r, with the same limits
// as DecodeEvent.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
