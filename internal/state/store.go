package state

import (
	"sync"

	"go.uber.org/zap"

	"github.com/averill/deckd/internal/logging"
)

// Store tracks the state of every toggle button, keyed by display name.
// All methods are safe for concurrent use. The lock is held only for the
// map mutation itself, never across an external command; Toggle performs
// its read-modify-write under the write lock so concurrent toggles of the
// same name cannot lose updates.
type Store struct {
	mu     sync.RWMutex
	states map[string]State
}

// NewStore creates an empty store. Absent entries read as Unknown.
func NewStore() *Store {
	return &Store{states: make(map[string]State)}
}

// Get returns the current state for name, Unknown if never written.
func (s *Store) Get(name string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[name]
}

// Set records state for name, replacing any previous value.
func (s *Store) Set(name string, st State) {
	s.mu.Lock()
	prev, ok := s.states[name]
	s.states[name] = st
	s.mu.Unlock()

	if !ok {
		prev = Unknown
	}
	logging.Debug("Toggle state set",
		zap.String("button", name),
		zap.Stringer("previous", prev),
		zap.Stringer("state", st),
	)
}

// Toggle inverts the state for name and returns the new value. Starting
// from Unknown the state stays Unknown; an unknown state cannot be
// inverted.
func (s *Store) Toggle(name string) State {
	s.mu.Lock()
	st := s.states[name].Toggle()
	s.states[name] = st
	s.mu.Unlock()

	logging.Debug("Toggle state flipped",
		zap.String("button", name),
		zap.Stringer("state", st),
	)
	return st
}

// UpdateFromProbe records the state implied by a probe outcome: On when
// the probe succeeded, Off when it reported failure. Probes that could
// not run at all are classified by the caller and never reach here.
func (s *Store) UpdateFromProbe(name string, succeeded bool) {
	if succeeded {
		s.Set(name, On)
	} else {
		s.Set(name, Off)
	}
}

// Clear removes all entries, returning every button to Unknown.
func (s *Store) Clear() {
	s.mu.Lock()
	n := len(s.states)
	s.states = make(map[string]State)
	s.mu.Unlock()

	logging.Debug("Toggle states cleared", zap.Int("count", n))
}

// Count returns the number of buttons with a recorded state.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Snapshot returns a point-in-time copy of all entries.
func (s *Store) Snapshot() map[string]State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]State, len(s.states))
	for k, v := range s.states {
		out[k] = v
	}
	return out
}
