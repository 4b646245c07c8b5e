package resetcode

import (
	"sync"
	"time"
)

// Entry is a pending reset code. Entries deliberately outlive ExpiresAt:
// verification must be able to tell "expired" apart from "never issued /
// wrong code", so expiry is checked lazily by the caller and stale entries
// are only removed by Delete, by being overwritten, or by PurgeExpired.
type Entry struct {
	Code      string
	ExpiresAt time.Time
}

// Store holds at most one pending code per email. It is shared mutable
// state across all requests; concurrent writes for the same email are
// last-write-wins.
type Store struct {
	mu      sync.Mutex
	pending map[string]Entry
}

func NewStore() *Store {
	return &Store{pending: make(map[string]Entry)}
}

// Set records a pending code, silently discarding any prior one.
func (s *Store) Set(email, code string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[email] = Entry{Code: code, ExpiresAt: expiresAt}
}

func (s *Store) Get(email string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.pending[email]
	return entry, ok
}

func (s *Store) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, email)
}

// PurgeExpired drops entries whose deadline passed before cutoff and
// returns how many were removed. Run with a cutoff in the past so recently
// expired codes still report "expired" rather than "invalid".
func (s *Store) PurgeExpired(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for email, entry := range s.pending {
		if entry.ExpiresAt.Before(cutoff) {
			delete(s.pending, email)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
