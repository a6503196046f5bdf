package bot

import (
	"sync"
	"time"
)

// Mode is the per-user conversation state. It decides how the user's next
// free-text message is interpreted.
type Mode int

const (
	// ModeIdle means the next message is a command
	ModeIdle Mode = iota
	// ModeAwaitingSuggestion means the next message is forwarded to the operator
	ModeAwaitingSuggestion
	// ModeAwaitingFlavorQuery means the next message is a comma-separated flavor query
	ModeAwaitingFlavorQuery
)

type stateEntry struct {
	mode    Mode
	expires time.Time
}

// StateStore holds each user's dialog state in memory. States expire after
// ttl so an abandoned dialog doesn't swallow a command sent days later.
type StateStore struct {
	mutex   sync.Mutex
	entries map[string]stateEntry
	ttl     time.Duration
}

// NewStateStore creates a state store with the given entry TTL.
func NewStateStore(ttl time.Duration) *StateStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &StateStore{
		entries: make(map[string]stateEntry),
		ttl:     ttl,
	}
}

// Get returns the user's current mode; expired or absent entries read as
// ModeIdle.
func (s *StateStore) Get(userID string) Mode {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return ModeIdle
	}
	if time.Now().After(entry.expires) {
		delete(s.entries, userID)
		return ModeIdle
	}

	return entry.mode
}

// Set moves the user into mode.
func (s *StateStore) Set(userID string, mode Mode) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries[userID] = stateEntry{
		mode:    mode,
		expires: time.Now().Add(s.ttl),
	}
}

// Clear returns the user to ModeIdle.
func (s *StateStore) Clear(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.entries, userID)
}
