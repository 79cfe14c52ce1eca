package snapshot

import (
	"sync"

	"linux-monitor/internal/domain"
)

// SnapshotStore is the server-side cache of the last published snapshot.
// Listeners run after the value is visible to Get, outside the store lock.
type SnapshotStore struct {
	Store[domain.Snapshot]

	listenersMu sync.RWMutex
	listeners   []func(domain.Snapshot)
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) OnSet(fn func(domain.Snapshot)) {
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, fn)
	s.listenersMu.Unlock()
}

func (s *SnapshotStore) Set(snap domain.Snapshot) uint64 {
	v := s.Store.Set(snap)

	s.listenersMu.RLock()
	defer s.listenersMu.RUnlock()
	for _, fn := range s.listeners {
		fn(snap)
	}

	return v
}
