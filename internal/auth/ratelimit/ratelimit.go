// Package ratelimit tracks failed login attempts per email. The in-memory
// store stands in for what a real deployment would keep in a shared cache
// with expiry; the interface is the seam between the two.
package ratelimit

import (
	"sync"
	"time"

	"github.com/manas360online-source/authentication-system/internal/auth/domain"
)

type AttemptStore interface {
	// Get returns the current counter for email, or nil if none exists.
	Get(email string) *domain.LoginAttempt
	// Increment records one failed attempt, starting a new window on the
	// first, and returns the updated counter.
	Increment(email string) domain.LoginAttempt
	// Lock sets the lockout expiry for email.
	Lock(email string, until time.Time)
	// Reset discards the counter for email.
	Reset(email string)
}

type MemoryStore struct {
	mu       sync.Mutex
	attempts map[string]*domain.LoginAttempt
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts: make(map[string]*domain.LoginAttempt),
		now:      time.Now,
	}
}

// NewMemoryStoreWithClock allows tests to control the window timestamps.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	s := NewMemoryStore()
	s.now = now
	return s
}

func (s *MemoryStore) Get(email string) *domain.LoginAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[email]
	if !ok {
		return nil
	}
	copied := *a
	return &copied
}

func (s *MemoryStore) Increment(email string) domain.LoginAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[email]
	if !ok {
		a = &domain.LoginAttempt{WindowStart: s.now()}
		s.attempts[email] = a
	}
	a.Count++
	return *a
}

func (s *MemoryStore) Lock(email string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[email]
	if !ok {
		a = &domain.LoginAttempt{WindowStart: s.now()}
		s.attempts[email] = a
	}
	a.LockedUntil = until
}

func (s *MemoryStore) Reset(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, email)
}
