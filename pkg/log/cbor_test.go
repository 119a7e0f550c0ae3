package log

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func TestDecodeEventRejectsOversizedArray(t *testing.T) {
	transports := make([]string, maxEventArray+1)
	for i := range transports {
		transports[i] = "CELLULAR"
	}
	data, err := EncodeEvent(Event{
		Timestamp:    time.Now(),
		SessionID:    "session-1",
		Category:     CategoryCapabilities,
		Capabilities: &CapabilitiesEvent{Transports: transports},
	})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	_, err = DecodeEvent(data)
	var arrErr *cbor.MaxArrayElementsError
	if !errors.As(err, &arrErr) {
		t.Fatalf("expected MaxArrayElementsError, got %v", err)
	}
}

func TestDecodeEventRejectsOversizedMap(t *testing.T) {
	m := make(map[int]int, maxEventMapPairs+1)
	for i := 0; i <= maxEventMapPairs; i++ {
		m[i+100] = i
	}
	data, err := cbor.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	_, err = DecodeEvent(data)
	var mapErr *cbor.MaxMapPairsError
	if !errors.As(err, &mapErr) {
		t.Fatalf("expected MaxMapPairsError, got %v", err)
	}
}

func TestDecodeEventRejectsDeepNesting(t *testing.T) {
	// {1: [[[["x"]]]]} nests five levels.
	data, err := cbor.Marshal(map[int]any{1: []any{[]any{[]any{[]any{"x"}}}}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	_, err = DecodeEvent(data)
	var nestErr *cbor.MaxNestedLevelError
	if !errors.As(err, &nestErr) {
		t.Fatalf("expected MaxNestedLevelError, got %v", err)
	}
}

func TestDecodeEventRejectsDuplicateKeys(t *testing.T) {
	// map(2) {2: "a", 2: "b"}
	data := []byte{0xa2, 0x02, 0x61, 'a', 0x02, 0x61, 'b'}

	_, err := DecodeEvent(data)
	var dupErr *cbor.DupMapKeyError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DupMapKeyError, got %v", err)
	}
}

func TestDecodeEventRejectsIndefiniteLength(t *testing.T) {
	// indefinite map {2: "a"}
	data := []byte{0xbf, 0x02, 0x61, 'a', 0xff}

	_, err := DecodeEvent(data)
	var indefErr *cbor.IndefiniteLengthError
	if !errors.As(err, &indefErr) {
		t.Fatalf("expected IndefiniteLengthError, got %v", err)
	}
}

func TestDecoderReadsLargestEvent(t *testing.T) {
	event := Event{
		Timestamp:      time.Now(),
		SessionID:      "session-1",
		Source:         SourceCapabilities,
		Category:       CategoryCapabilities,
		SubscriptionID: 2,
		Lifecycle:      &LifecycleEvent{Action: LifecycleStart, Reason: "r"},
		Binding:        &BindingEvent{OldSubscriptionID: 1, NewSubscriptionID: 2, NewState: "BOUND"},
		Override:       &OverrideEvent{Raw: 3, Mapped: "NR_NSA"},
		Capabilities: &CapabilitiesEvent{
			Network:    "rmnet0",
			Transports: []string{"CELLULAR", "WIFI", "BLUETOOTH", "ETHERNET", "VPN"},
		},
		Status: &StatusEvent{Sequence: 9, OverrideType: "NR_NSA"},
		Error:  &ErrorEventData{Message: "m", Context: "c"},
	}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(event); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	dec := NewDecoder(&buf)
	var decoded Event
	if err := dec.Decode(&decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded.Capabilities.Transports) != 5 || decoded.Error.Context != "c" {
		t.Errorf("decoded event lost fields: %+v", decoded)
	}
	if err := dec.Decode(&decoded); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
