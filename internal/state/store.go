package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/pokedex"
)

// Phase is the loader lifecycle: idle → loading → ready | failed.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Phase      Phase
	Activation string
	Pokemon    []pokedex.Pokemon
	Types      []pokedex.Type
	LastError  error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Loading reports whether the fetch is still outstanding.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// Loaded reports whether the catalog reached the ready state. A ready catalog
// may still be empty.
func (s Snapshot) Loaded() bool {
	return s.Phase == PhaseReady
}

// Store coordinates the one-shot load with the view that owns it.
type Store struct {
	mu         sync.RWMutex
	snapshot   Snapshot
	closed     bool
	newTokenFn func() string
}

// Begin moves the store from idle to loading and returns the activation
// token that Finish must present. It reports false if a load already began or
// the store is closed; there is no retry transition.
func (s *Store) Begin() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.snapshot.Phase != PhaseIdle {
		return "", false
	}
	token := s.newToken()
	s.snapshot = Snapshot{
		Phase:      PhaseLoading,
		Activation: token,
		StartedAt:  time.Now(),
	}
	return token, true
}

// Finish applies a load result. Results for another activation, results
// arriving after Close, and results arriving after the load already finished
// are dropped; Finish reports whether the result was applied.
func (s *Store) Finish(token string, res catalog.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.snapshot.Phase != PhaseLoading || token != s.snapshot.Activation {
		return false
	}

	s.snapshot.FinishedAt = time.Now()
	if res.Err != nil {
		s.snapshot.Phase = PhaseFailed
		s.snapshot.LastError = res.Err
		s.snapshot.Pokemon = nil
		s.snapshot.Types = nil
		return true
	}
	s.snapshot.Phase = PhaseReady
	s.snapshot.LastError = nil
	s.snapshot.Pokemon = clonePokemon(res.Pokemon)
	s.snapshot.Types = cloneTypes(res.Types)
	return true
}

// Close marks the owning view as torn down. Later results are discarded.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Closed reports whether Close was called.
func (s *Store) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Pokemon = clonePokemon(s.snapshot.Pokemon)
	snap.Types = cloneTypes(s.snapshot.Types)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func (s *Store) newToken() string {
	if s.newTokenFn != nil {
		return s.newTokenFn()
	}
	return uuid.NewString()
}

func clonePokemon(items []pokedex.Pokemon) []pokedex.Pokemon {
	if items == nil {
		return nil
	}
	dup := make([]pokedex.Pokemon, len(items))
	copy(dup, items)
	return dup
}

func cloneTypes(items []pokedex.Type) []pokedex.Type {
	if items == nil {
		return nil
	}
	dup := make([]pokedex.Type, len(items))
	copy(dup, items)
	return dup
}
