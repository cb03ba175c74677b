package store

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/diet"
)

// stateVersion is written with every payload; payloads with another version
// are treated as corrupt.
const stateVersion = 1

type envelope struct {
	Version          int            `json:"version"          cbor:"version"`
	Profiles         []diet.Profile `json:"profiles"         cbor:"profiles"`
	CurrentProfileID string         `json:"currentProfileId" cbor:"currentProfileId"`
	CustomFoods      []catalog.Food `json:"customFoods"      cbor:"customFoods"`
}

var cborEnc = func() cbor.EncMode {
	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func wrap(s State) envelope {
	s = s.normalize()
	return envelope{
		Version:          stateVersion,
		Profiles:         s.Profiles,
		CurrentProfileID: s.CurrentProfileID,
		CustomFoods:      s.CustomFoods,
	}
}

func unwrap(e envelope) (State, error) {
	if e.Version != stateVersion {
		return State{}, fmt.Errorf("%w: unsupported version %d", ErrCorruptState, e.Version)
	}
	s := State{
		Profiles:         e.Profiles,
		CurrentProfileID: e.CurrentProfileID,
		CustomFoods:      e.CustomFoods,
	}
	return s.normalize(), nil
}

// MarshalJSON encodes s as a versioned JSON payload.
func MarshalJSON(s State) ([]byte, error) {
	return json.Marshal(wrap(s))
}

// UnmarshalJSON decodes a payload written by MarshalJSON.
func UnmarshalJSON(data []byte) (State, error) {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return unwrap(e)
}

// MarshalCBOR encodes s as a versioned CBOR payload.
func MarshalCBOR(s State) ([]byte, error) {
	return cborEnc.Marshal(wrap(s))
}

// UnmarshalCBOR decodes a payload written by MarshalCBOR.
func UnmarshalCBOR(data []byte) (State, error) {
	var e envelope
	if err := cbor.Unmarshal(data, &e); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return unwrap(e)
}
