package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore tracks logged-in browser sessions of the stand-in app
type SessionStore interface {
	Create(username string) string
	Lookup(token string) (string, bool)
	Delete(token string)
}

type session struct {
	username  string
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in memory with a fixed lifetime
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore creates a store whose sessions expire after ttl
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a session for username and returns its token
func (s *MemorySessionStore) Create(username string) string {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{username: username, expiresAt: s.now().Add(s.ttl)}
	return token
}

// Lookup returns the user behind a live token
func (s *MemorySessionStore) Lookup(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", false
	}
	return sess.username, true
}

// Delete ends a session
func (s *MemorySessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
