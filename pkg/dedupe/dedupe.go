package dedupe

import (
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

// Store is the reserve-if-absent set every reconciler and the dispatcher
// share. Reserve must be atomic; the in-memory implementation below holds a
// single lock, a distributed one maps onto Redis SET NX EX.
type Store interface {
	// Reserve claims key for ttl. It reports false if the key is already
	// reserved and not yet expired.
	Reserve(key string, ttl time.Duration) bool
	// Release drops a reservation early, e.g. when the guarded side effect
	// failed and a retry should be allowed through.
	Release(key string)
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]time.Time)}
}

func (s *memoryStore) Reserve(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if exp, ok := s.entries[key]; ok && now.Before(exp) {
		return false
	}
	s.entries[key] = now.Add(ttl)
	return true
}

func (s *memoryStore) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *memoryStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Start launches the janitor that evicts expired reservations until ctx is
// cancelled.
func (s *memoryStore) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (s *memoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for key, exp := range s.entries {
		if now.After(exp) {
			delete(s.entries, key)
		}
	}
}
