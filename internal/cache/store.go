// Package cache provides the in-memory TTL store backing the stock data
// layer. Entries past their TTL are not evicted eagerly: stale real data is
// still worth serving when a live refresh is unavailable, so lookups report
// freshness instead of hiding expired entries.
package cache

import (
	"sync"
	"time"
)

// Store is a mutex-guarded TTL cache keyed by string. Instances are
// injectable so every test can run against its own isolated store.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

type entry[T any] struct {
	payload   T
	fetchedAt time.Time
	ttl       time.Duration
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithClock overrides the store's time source, for freshness tests.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(s *Store[T]) { s.now = now }
}

// NewStore creates a store whose entries default to the given TTL.
func NewStore[T any](ttl time.Duration, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached payload for key along with whether it is still
// fresh. Stale entries are returned with fresh=false rather than dropped.
func (s *Store[T]) Get(key string) (payload T, fresh bool, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		var zero T
		return zero, false, false
	}
	return e.payload, s.now().Sub(e.fetchedAt) < e.ttl, true
}

// Put stores a payload under key with the store's default TTL.
func (s *Store[T]) Put(key string, payload T) {
	s.PutTTL(key, payload, s.ttl)
}

// PutTTL stores a payload under key with an entry-specific TTL.
func (s *Store[T]) PutTTL(key string, payload T, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry[T]{
		payload:   payload,
		fetchedAt: s.now(),
		ttl:       ttl,
	}
}

// Len returns the number of entries, fresh or stale.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
