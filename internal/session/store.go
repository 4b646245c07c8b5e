package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps live session ids server-side so that logout actually revokes
// a session instead of only clearing the client cookie. Entries expire with
// the same TTL as the signed token; capacity bounds memory, an evicted
// session just forces a re-login.
type Store struct {
	cache *expirable.LRU[string, string]
}

func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[string, string](capacity, nil, ttl),
	}
}

// Create registers a new session and returns its opaque id.
func (s *Store) Create(username string) string {
	id := newSessionID()
	s.cache.Add(id, username)
	return id
}

func (s *Store) Valid(id string) bool {
	_, ok := s.cache.Get(id)
	return ok
}

func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}

func newSessionID() string {
	buf := make([]byte, 20)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
