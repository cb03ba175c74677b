// Package store persists the tracker state: profiles, the current profile
// selection and custom foods. The built-in catalog is never persisted.
package store

import (
	"context"
	"errors"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/diet"
)

// ErrCorruptState is returned by Load when a saved payload cannot be decoded.
var ErrCorruptState = errors.New("corrupt saved state")

// State is the persisted tuple.
type State struct {
	Profiles         []diet.Profile `json:"profiles"         cbor:"profiles"`
	CurrentProfileID string         `json:"currentProfileId" cbor:"currentProfileId"`
	CustomFoods      []catalog.Food `json:"customFoods"      cbor:"customFoods"`
}

// EmptyState is the state used when nothing has been saved.
func EmptyState() State {
	return State{
		Profiles:    []diet.Profile{},
		CustomFoods: []catalog.Food{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Profiles:         make([]diet.Profile, len(s.Profiles)),
		CurrentProfileID: s.CurrentProfileID,
		CustomFoods:      make([]catalog.Food, len(s.CustomFoods)),
	}
	for i, p := range s.Profiles {
		out.Profiles[i] = p.Clone()
	}
	copy(out.CustomFoods, s.CustomFoods)
	return out
}

// normalize fills nil slices and restores the four-meal layout of every diet.
func (s State) normalize() State {
	out := s.Clone()
	for i, p := range out.Profiles {
		for j, d := range p.Diets {
			out.Profiles[i].Diets[j] = d.Normalize()
		}
	}
	return out
}

// Gateway loads and saves the whole state. Load returns EmptyState and a nil
// error when nothing has been saved yet.
type Gateway interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, s State) error
}
