// Package snapshot holds the most recent value for concurrent readers.
package snapshot

import "sync"

// Store keeps a single value. Set replaces it and Get returns a copy of
// whatever was last set, or the zero value.
type Store[T any] struct {
	mu      sync.RWMutex
	data    T
	version uint64
}

func (s *Store[T]) Set(v T) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = v
	s.version++
	return s.version
}

func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Version counts Set calls; 0 means nothing was stored yet.
func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
