package wire

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for readings.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for readings.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix, // Unix seconds
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // last wins
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// EncodeReading encodes a reading to CBOR bytes.
func EncodeReading(r *Reading) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reading: %w", err)
	}
	return Marshal(r)
}

// DecodeReading decodes CBOR bytes into a reading.
func DecodeReading(data []byte) (*Reading, error) {
	var r Reading
	if err := Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode reading: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reading: %w", err)
	}
	return &r, nil
}

// EncodeSnapshot encodes a snapshot to CBOR bytes.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	for i := range s.Readings {
		if err := s.Readings[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid reading %d: %w", i, err)
		}
	}
	return Marshal(s)
}

// DecodeSnapshot decodes CBOR bytes into a snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	for i := range s.Readings {
		if err := s.Readings[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid reading %d: %w", i, err)
		}
	}
	return &s, nil
}
