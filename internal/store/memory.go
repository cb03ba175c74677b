package store

import (
	"context"
	"sync"
)

// MemoryGateway keeps the state in process memory.
type MemoryGateway struct {
	mu    sync.RWMutex
	state *State
	saves int
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Load returns a copy of the last saved state.
func (g *MemoryGateway) Load(_ context.Context) (State, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.state == nil {
		return EmptyState(), nil
	}
	return g.state.normalize(), nil
}

// Save stores a copy of s.
func (g *MemoryGateway) Save(_ context.Context, s State) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := s.normalize()
	g.state = &c
	g.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (g *MemoryGateway) Saves() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.saves
}

var _ Gateway = (*MemoryGateway)(nil)
