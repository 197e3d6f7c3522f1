package memory

import (
	"context"
	"sync"
	"time"
)

// NonceStore implements ports.NonceStore with expiring map entries.
type NonceStore struct {
	mu    sync.Mutex
	seen  map[string]time.Time
	nowFn func() time.Time
}

// NewNonceStore creates an empty nonce store.
func NewNonceStore() *NonceStore {
	return &NonceStore{seen: make(map[string]time.Time), nowFn: time.Now}
}

// CheckAndSet records nonce for address unless it is already live.
// Returns true if the nonce is new (valid), false if already used.
func (s *NonceStore) CheckAndSet(_ context.Context, address string, nonce string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	for k, exp := range s.seen {
		if !now.Before(exp) {
			delete(s.seen, k)
		}
	}

	key := address + ":" + nonce
	if _, ok := s.seen[key]; ok {
		return false, nil
	}
	s.seen[key] = now.Add(ttl)
	return true, nil
}
