// Package state holds the bot's shared runtime configuration: one struct
// behind a read-write lock, initialized once at startup and read by every
// command. Callers must not hold a snapshot open across outbound Discord
// calls; Snapshot copies the data out so the lock is released immediately.
package state

import "sync"

// Data is the shared configuration. MuteRoleID and GeneralChannelID may be
// empty when the corresponding feature is unconfigured.
type Data struct {
	Version          string
	MuteRoleID       string
	GeneralChannelID string
}

// State guards Data for unbounded concurrent readers and rare writers.
type State struct {
	mu   sync.RWMutex
	data Data
}

// New returns a State initialized with d.
func New(d Data) *State {
	return &State{data: d}
}

// Snapshot returns a copy of the current data.
func (s *State) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Update runs fn with exclusive access to the data.
func (s *State) Update(fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}
